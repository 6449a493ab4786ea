package petstore

import (
	"context"
	"fmt"

	"github.com/finpet/finpet-api/pkg/inventory"
)

// Shop writes live outside this service; these inserts seed the purchase
// ledger, placements and custom stickers for store tests.

func (s *pgStore) CreatePurchase(ctx context.Context, p *inventory.Purchase) error {
	_, err := s.db.NewInsert().Model(&PurchaseDao{
		ID:          p.ID,
		UserID:      p.UserID,
		ItemID:      p.ItemID,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Cost:        p.Cost,
		PurchasedAt: p.PurchasedAt,
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (s *pgStore) CreateRoomSticker(ctx context.Context, rs *inventory.RoomSticker) error {
	_, err := s.db.NewInsert().Model(&RoomStickerDao{
		ID:        rs.ID,
		PetID:     rs.PetID,
		StickerID: rs.StickerID,
		X:         rs.X,
		Y:         rs.Y,
		Rotation:  rs.Rotation,
		Scale:     rs.Scale,
		ZIndex:    rs.ZIndex,
		CreatedAt: rs.CreatedAt,
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create room sticker: %w", err)
	}
	return nil
}

func (s *pgStore) CreatePetAccessory(ctx context.Context, pa *inventory.PetAccessory) error {
	_, err := s.db.NewInsert().Model(&PetAccessoryDao{
		ID:          pa.ID,
		PetID:       pa.PetID,
		AccessoryID: pa.AccessoryID,
		X:           pa.X,
		Y:           pa.Y,
		Rotation:    pa.Rotation,
		Size:        pa.Size,
		CreatedAt:   pa.CreatedAt,
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create pet accessory: %w", err)
	}
	return nil
}

func (s *pgStore) CreateCustomSticker(ctx context.Context, cs *inventory.CustomSticker) error {
	_, err := s.db.NewInsert().Model(&CustomStickerDao{
		ID:        cs.ID,
		UserID:    cs.UserID,
		Name:      cs.Name,
		ImageURL:  cs.ImageURL,
		Price:     cs.Price,
		IsPublic:  cs.IsPublic,
		CreatedAt: cs.CreatedAt,
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create custom sticker: %w", err)
	}
	return nil
}
