// Package dashboard defines the aggregated payloads served to the client:
// the home dashboard, the pet room and a friend's room as seen by a visitor.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/pet"
)

// RecentTransactions is how many transactions the full dashboard embeds.
const RecentTransactions = 10

// PlacedSticker is a sticker in the room with its display metadata.
type PlacedSticker struct {
	inventory.RoomSticker
	inventory.Display
}

// WornAccessory is an accessory on the pet with its display metadata.
type WornAccessory struct {
	inventory.PetAccessory
	inventory.Display
}

// Payload is the fast dashboard.
type Payload struct {
	UserBalance          decimal.Decimal   `json:"userBalance"`
	Pet                  *pet.Pet          `json:"pet"`
	Stickers             []PlacedSticker   `json:"stickers"`
	StickerInventory     []inventory.Entry `json:"stickerInventory"`
	FoodInventory        []inventory.Entry `json:"foodInventory"`
	Accessories          []WornAccessory   `json:"accessories"`
	AccessoryInventory   []inventory.Entry `json:"accessoryInventory"`
	HasUnclaimedMissions bool              `json:"hasUnclaimedMissions"`
	UnclaimedMissions    []mission.Summary `json:"unclaimedMissions"`
	PendingInvitations   int               `json:"pendingInvitations"`
}

// FullPayload adds the monthly totals and the most recent transactions.
type FullPayload struct {
	Payload
	ledger.MonthlyTotals
	RecentTransactions []*ledger.Transaction `json:"recentTransactions"`
}

// RoomPet is the pet with the mood flags the room view renders.
type RoomPet struct {
	pet.Pet
	IsUnhappy bool `json:"isUnhappy"`
	IsHungry  bool `json:"isHungry"`
}

// NewRoomPet derives the room flags from p.
func NewRoomPet(p *pet.Pet) RoomPet {
	return RoomPet{Pet: *p, IsUnhappy: p.IsUnhappy(), IsHungry: p.IsHungry()}
}

// Room is the pet room of the caller, with the custom stickers they made and
// the ones other users published.
type Room struct {
	UserBalance        decimal.Decimal           `json:"userBalance"`
	Pet                RoomPet                   `json:"pet"`
	Stickers           []PlacedSticker           `json:"stickers"`
	StickerInventory   []inventory.Entry         `json:"stickerInventory"`
	FoodInventory      []inventory.Entry         `json:"foodInventory"`
	Accessories        []WornAccessory           `json:"accessories"`
	AccessoryInventory []inventory.Entry         `json:"accessoryInventory"`
	CustomStickers     []inventory.CustomSticker `json:"customStickers"`
	PublicStickers     []inventory.CustomSticker `json:"publicStickers"`
}

// VisitRoom is another user's room. It carries no inventory or balance.
type VisitRoom struct {
	Pet         RoomPet         `json:"pet"`
	Stickers    []PlacedSticker `json:"stickers"`
	Accessories []WornAccessory `json:"accessories"`
}

// StickerIDs lists the sticker item ids of placed stickers.
func StickerIDs(rs []inventory.RoomSticker) []string {
	ids := make([]string, len(rs))
	for i := range rs {
		ids[i] = rs[i].StickerID
	}
	return ids
}

// AccessoryIDs lists the item ids of worn accessories.
func AccessoryIDs(pa []inventory.PetAccessory) []string {
	ids := make([]string, len(pa))
	for i := range pa {
		ids[i] = pa[i].AccessoryID
	}
	return ids
}

// Index maps custom stickers by id.
func Index(customs []inventory.CustomSticker) map[string]inventory.CustomSticker {
	out := make(map[string]inventory.CustomSticker, len(customs))
	for _, cs := range customs {
		out[cs.ID] = cs
	}
	return out
}

// Place attaches display metadata to placed stickers and worn accessories.
func Place(
	stickers []inventory.RoomSticker,
	accessories []inventory.PetAccessory,
	customs map[string]inventory.CustomSticker,
) ([]PlacedSticker, []WornAccessory) {
	placed := make([]PlacedSticker, len(stickers))
	for i, rs := range stickers {
		placed[i] = PlacedSticker{
			RoomSticker: rs,
			Display:     inventory.Describe(inventory.ParseItemRef(rs.StickerID), inventory.CategorySticker, customs),
		}
	}

	worn := make([]WornAccessory, len(accessories))
	for i, pa := range accessories {
		worn[i] = WornAccessory{
			PetAccessory: pa,
			Display:      inventory.Describe(inventory.ParseItemRef(pa.AccessoryID), inventory.CategoryAccessory, customs),
		}
	}
	return placed, worn
}
