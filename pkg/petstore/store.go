package petstore

import (
	"context"
	"errors"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/pet"
)

// ErrPetNotFound is returned when a user has no pet yet.
var ErrPetNotFound = errors.New("pet not found")

// PetStore persists pets and their daily transitions.
type PetStore interface {
	GetPetByUserID(ctx context.Context, userID string) (*pet.Pet, error)
	CreatePet(ctx context.Context, p *pet.Pet) (*pet.Pet, error)
	SwapDailyState(ctx context.Context, prev, next *pet.Pet) (bool, error)
	AdjustMood(ctx context.Context, userID string, delta int) (int, error)
}

// ItemStore reads the purchase ledger, placements and custom stickers.
type ItemStore interface {
	ListPurchases(ctx context.Context, userID string) ([]inventory.Purchase, error)
	ListRoomStickers(ctx context.Context, petID string) ([]inventory.RoomSticker, error)
	ListPetAccessories(ctx context.Context, petID string) ([]inventory.PetAccessory, error)
	GetCustomStickers(ctx context.Context, ids []string) ([]inventory.CustomSticker, error)
	ListCustomStickersByUser(ctx context.Context, userID string) ([]inventory.CustomSticker, error)
	ListPublicCustomStickers(ctx context.Context, excludeUserID string, limit int) ([]inventory.CustomSticker, error)
}

// Store defines the interface for pet data persistence
type Store interface {
	PetStore
	ItemStore
}
