package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemRef(t *testing.T) {
	ref := ParseItemRef("custom-abc")
	assert.True(t, ref.IsCustom())
	assert.Equal(t, "abc", ref.ID())
	assert.Equal(t, "custom-abc", ref.String())

	ref = ParseItemRef("sticker-star")
	assert.False(t, ref.IsCustom())
	assert.Equal(t, "sticker-star", ref.String())

	// a bare prefix is not a custom reference
	ref = ParseItemRef("custom-")
	assert.False(t, ref.IsCustom())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		item string
		want Category
	}{
		{"food", "whatever", CategoryFood},
		{"Accessories", "x", CategoryAccessory},
		{"", "food-apple", CategoryFood},
		{"", "food-unknown", CategoryFood},
		{"", "acc-scarf", CategoryAccessory},
		{"", "custom-1", CategorySticker},
		{"", "sticker-star", CategorySticker},
		{"bogus", "acc-hat", CategoryAccessory},
	}
	for _, tt := range tests {
		t.Run(tt.raw+"/"+tt.item, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.raw, ParseItemRef(tt.item)))
		})
	}
}

func TestRemaining(t *testing.T) {
	a, b, c := Catalog("sticker-a"), Catalog("sticker-b"), Custom("c")

	got := Remaining(
		map[ItemRef]int{a: 3, b: 1, c: 2},
		map[ItemRef]int{a: 1, b: 2, Catalog("sticker-z"): 4},
	)

	assert.Equal(t, map[ItemRef]int{a: 2, c: 2}, got)
	for _, n := range got {
		assert.Positive(t, n)
	}
}

func TestBuild(t *testing.T) {
	purchases := []Purchase{
		{ItemID: "sticker-star", Category: "sticker", Quantity: 2},
		{ItemID: "sticker-star", Category: "sticker", Quantity: 1},
		{ItemID: "custom-s1", Category: "sticker", Quantity: 1},
		{ItemID: "custom-gone", Category: "sticker", Quantity: 1},
		{ItemID: "food-apple", Category: "food", Quantity: 4},
		{ItemID: "acc-hat", Category: "", Quantity: 1},
		{ItemID: "acc-bow", Category: "accessory", Quantity: 1},
	}
	customs := map[string]CustomSticker{
		"s1": {ID: "s1", Name: "My Cat", ImageURL: "https://img/cat.png"},
	}

	inv := Build(purchases,
		[]string{"sticker-star", "custom-s1"},
		[]string{"acc-hat"},
		customs,
	)

	require.Len(t, inv.Stickers, 2)
	assert.Equal(t, "custom-gone", inv.Stickers[0].ItemID)
	assert.Equal(t, placeholderName, inv.Stickers[0].Name)
	assert.True(t, inv.Stickers[0].IsCustom)
	assert.Equal(t, "sticker-star", inv.Stickers[1].ItemID)
	assert.Equal(t, 2, inv.Stickers[1].Count)
	assert.Equal(t, "⭐", inv.Stickers[1].Emoji)

	require.Len(t, inv.Food, 1)
	assert.Equal(t, 4, inv.Food[0].Count)

	require.Len(t, inv.Accessories, 1)
	assert.Equal(t, "acc-bow", inv.Accessories[0].ItemID)
}

func TestBuild_FoodIsNotReducedByPlacement(t *testing.T) {
	inv := Build(
		[]Purchase{{ItemID: "food-cake", Category: "food", Quantity: 1}},
		[]string{"food-cake"}, nil, nil,
	)
	require.Len(t, inv.Food, 1)
	assert.Equal(t, 1, inv.Food[0].Count)
}

func TestCustomIDs(t *testing.T) {
	ids := CustomIDs(
		[]Purchase{{ItemID: "custom-b"}, {ItemID: "sticker-star"}, {ItemID: "custom-a"}},
		[]string{"custom-b", "custom-c"},
	)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestDescribe_UnknownCatalogItem(t *testing.T) {
	d := Describe(Catalog("food-mystery"), CategoryFood, nil)
	assert.Equal(t, placeholderName, d.Name)
	assert.Equal(t, FallbackEmoji(CategoryFood), d.Emoji)
	assert.False(t, d.IsCustom)
}
