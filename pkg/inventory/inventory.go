// Package inventory derives what a user still owns from the purchase ledger
// and the items currently placed in their pet's room.
package inventory

import (
	"sort"
	"time"
)

// Purchase is a single row of the append-only purchase ledger.
type Purchase struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ItemID      string    `json:"itemId"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Cost        int       `json:"cost"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// CustomSticker is a user-generated sticker.
type CustomSticker struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	Price     int       `json:"price"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomSticker is a sticker placed in a pet's room.
type RoomSticker struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	StickerID string    `json:"stickerId"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Rotation  float64   `json:"rotation"`
	Scale     float64   `json:"scale"`
	ZIndex    int       `json:"zIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

// PetAccessory is an accessory worn by a pet.
type PetAccessory struct {
	ID          string    `json:"id"`
	PetID       string    `json:"petId"`
	AccessoryID string    `json:"accessoryId"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Rotation    float64   `json:"rotation"`
	Size        float64   `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Display is the metadata a client needs to render an item.
type Display struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsCustom bool   `json:"isCustom"`
}

// Entry is one line of an inventory.
type Entry struct {
	ItemID   string   `json:"itemId"`
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Display
}

// Inventories groups remaining items by category.
type Inventories struct {
	Stickers    []Entry `json:"stickers"`
	Food        []Entry `json:"food"`
	Accessories []Entry `json:"accessories"`
}

// Remaining subtracts placed counts from purchased counts. Items whose
// remaining count is zero or less are omitted.
func Remaining(purchased, placed map[ItemRef]int) map[ItemRef]int {
	out := make(map[ItemRef]int, len(purchased))
	for ref, n := range purchased {
		if left := n - placed[ref]; left > 0 {
			out[ref] = left
		}
	}
	return out
}

// Tally sums purchased quantities per item for one category.
func Tally(purchases []Purchase, cat Category) map[ItemRef]int {
	out := make(map[ItemRef]int)
	for _, p := range purchases {
		ref := ParseItemRef(p.ItemID)
		if ParseCategory(p.Category, ref) != cat || p.Quantity <= 0 {
			continue
		}
		out[ref] += p.Quantity
	}
	return out
}

// Count turns a list of placed item ids into per-item counts.
func Count(itemIDs []string) map[ItemRef]int {
	out := make(map[ItemRef]int, len(itemIDs))
	for _, id := range itemIDs {
		out[ParseItemRef(id)]++
	}
	return out
}

// CustomIDs returns the distinct CustomSticker ids referenced by the given
// purchases and placed item ids, so they can be loaded in one query.
func CustomIDs(purchases []Purchase, placed ...[]string) []string {
	seen := make(map[string]struct{})
	add := func(raw string) {
		if ref := ParseItemRef(raw); ref.IsCustom() {
			seen[ref.ID()] = struct{}{}
		}
	}
	for _, p := range purchases {
		add(p.ItemID)
	}
	for _, ids := range placed {
		for _, id := range ids {
			add(id)
		}
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Describe resolves display metadata for ref. Custom stickers that can no
// longer be found and unknown catalog ids get a placeholder.
func Describe(ref ItemRef, cat Category, customs map[string]CustomSticker) Display {
	if ref.IsCustom() {
		if cs, ok := customs[ref.ID()]; ok {
			return Display{Name: cs.Name, ImageURL: cs.ImageURL, IsCustom: true}
		}
		return Display{Name: placeholderName, Emoji: FallbackEmoji(cat), IsCustom: true}
	}
	if item, ok := Lookup(ref.ID()); ok {
		return Display{Name: item.Name, Emoji: item.Emoji}
	}
	return Display{Name: placeholderName, Emoji: FallbackEmoji(cat)}
}

// Build derives the three inventories. Stickers and accessories are reduced
// by what is currently placed; food is consumable and reported as purchased.
func Build(purchases []Purchase, placedStickers, wornAccessories []string, customs map[string]CustomSticker) Inventories {
	return Inventories{
		Stickers:    entries(Remaining(Tally(purchases, CategorySticker), Count(placedStickers)), CategorySticker, customs),
		Food:        entries(Tally(purchases, CategoryFood), CategoryFood, customs),
		Accessories: entries(Remaining(Tally(purchases, CategoryAccessory), Count(wornAccessories)), CategoryAccessory, customs),
	}
}

func entries(counts map[ItemRef]int, cat Category, customs map[string]CustomSticker) []Entry {
	out := make([]Entry, 0, len(counts))
	for ref, n := range counts {
		if n <= 0 {
			continue
		}
		out = append(out, Entry{
			ItemID:   ref.String(),
			Category: cat,
			Count:    n,
			Display:  Describe(ref, cat, customs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}
