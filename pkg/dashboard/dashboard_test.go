package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/pet"
)

func TestPlace(t *testing.T) {
	customs := Index([]inventory.CustomSticker{{ID: "abc", Name: "My cat", ImageURL: "https://img/cat.png"}})

	stickers := []inventory.RoomSticker{
		{ID: "rs1", StickerID: "sticker-star", X: 10, Y: 20},
		{ID: "rs2", StickerID: "custom-abc"},
		{ID: "rs3", StickerID: "custom-gone"},
	}
	accessories := []inventory.PetAccessory{{ID: "pa1", AccessoryID: "acc-bow"}}

	placed, worn := Place(stickers, accessories, customs)
	require.Len(t, placed, 3)
	require.Len(t, worn, 1)

	star, _ := inventory.Lookup("sticker-star")
	assert.Equal(t, star.Name, placed[0].Name)
	assert.Equal(t, 10.0, placed[0].X)
	assert.False(t, placed[0].IsCustom)

	assert.Equal(t, "My cat", placed[1].Name)
	assert.Equal(t, "https://img/cat.png", placed[1].ImageURL)
	assert.True(t, placed[1].IsCustom)

	assert.True(t, placed[2].IsCustom)
	assert.NotEmpty(t, placed[2].Name, "missing custom stickers render a placeholder")

	bow, _ := inventory.Lookup("acc-bow")
	assert.Equal(t, bow.Name, worn[0].Name)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StickerIDs([]inventory.RoomSticker{{StickerID: "a"}, {StickerID: "b"}}))
	assert.Equal(t, []string{"acc-hat"}, AccessoryIDs([]inventory.PetAccessory{{AccessoryID: "acc-hat"}}))
	assert.Empty(t, StickerIDs(nil))
}

func TestRoomPetJSON(t *testing.T) {
	p := &pet.Pet{ID: "p1", Mood: 20, Fullness: 80}
	raw, err := json.Marshal(NewRoomPet(p))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, true, got["isUnhappy"])
	assert.Equal(t, false, got["isHungry"])
	assert.Equal(t, "p1", got["id"])
}

func TestPlacedStickerJSONIsFlat(t *testing.T) {
	raw, err := json.Marshal(PlacedSticker{
		RoomSticker: inventory.RoomSticker{ID: "rs1", StickerID: "sticker-star"},
		Display:     inventory.Display{Name: "Star"},
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "rs1", got["id"])
	assert.Equal(t, "sticker-star", got["stickerId"])
	assert.Equal(t, "Star", got["name"])
}
