package petstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/pet"
)

type pgStore struct {
	db *bun.DB
}

var _ Store = (*pgStore)(nil)

// NewStore creates a new postgres implementation of the pet store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) GetPetByUserID(ctx context.Context, userID string) (*pet.Pet, error) {
	dao := new(PetDao)
	err := s.db.NewSelect().Model(dao).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return toPet(dao), nil
}

// CreatePet inserts p unless the user already has a pet, and returns the
// stored row either way.
func (s *pgStore) CreatePet(ctx context.Context, p *pet.Pet) (*pet.Pet, error) {
	_, err := s.db.NewInsert().
		Model(toPetDao(p)).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return s.GetPetByUserID(ctx, p.UserID)
}

// SwapDailyState persists the result of a daily transition only if the reset
// and login columns still hold the values prev was read with. Stat changes are
// applied as deltas so concurrent nudges are not lost. It reports whether the
// row was updated.
func (s *pgStore) SwapDailyState(ctx context.Context, prev, next *pet.Pet) (bool, error) {
	res, err := s.db.NewUpdate().
		Model((*PetDao)(nil)).
		Set("mood = LEAST(?, GREATEST(?, mood + ?))", pet.MaxStat, pet.MinStat, next.Mood-prev.Mood).
		Set("fullness = LEAST(?, GREATEST(?, fullness + ?))", pet.MaxStat, pet.MinStat, next.Fullness-prev.Fullness).
		Set("points = points + ?", next.Points-prev.Points).
		Set("last_login_date = ?", next.LastLoginDate).
		Set("last_daily_reset = ?", next.LastDailyReset).
		Set("consecutive_login_days = ?", next.ConsecutiveLoginDays).
		Set("updated_at = NOW()").
		Where("id = ?", prev.ID).
		Where("last_daily_reset IS NOT DISTINCT FROM ?", prev.LastDailyReset).
		Where("last_login_date IS NOT DISTINCT FROM ?", prev.LastLoginDate).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update pet daily state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// AdjustMood adds delta to the pet's mood, clamped to the stat range, and
// returns the new mood.
func (s *pgStore) AdjustMood(ctx context.Context, userID string, delta int) (int, error) {
	var mood int
	err := s.db.NewUpdate().
		TableExpr("pets").
		Set("mood = LEAST(?, GREATEST(?, mood + ?))", pet.MaxStat, pet.MinStat, delta).
		Set("updated_at = NOW()").
		Where("user_id = ?", userID).
		Returning("mood").
		Scan(ctx, &mood)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrPetNotFound
		}
		return 0, fmt.Errorf("failed to adjust mood: %w", err)
	}
	return mood, nil
}

func (s *pgStore) ListPurchases(ctx context.Context, userID string) ([]inventory.Purchase, error) {
	var daos []PurchaseDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("purchased_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	out := make([]inventory.Purchase, len(daos))
	for i := range daos {
		out[i] = toPurchase(&daos[i])
	}
	return out, nil
}

func (s *pgStore) ListRoomStickers(ctx context.Context, petID string) ([]inventory.RoomSticker, error) {
	var daos []RoomStickerDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("pet_id = ?", petID).
		Order("z_index ASC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list room stickers: %w", err)
	}

	out := make([]inventory.RoomSticker, len(daos))
	for i := range daos {
		out[i] = toRoomSticker(&daos[i])
	}
	return out, nil
}

func (s *pgStore) ListPetAccessories(ctx context.Context, petID string) ([]inventory.PetAccessory, error) {
	var daos []PetAccessoryDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("pet_id = ?", petID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet accessories: %w", err)
	}

	out := make([]inventory.PetAccessory, len(daos))
	for i := range daos {
		out[i] = toPetAccessory(&daos[i])
	}
	return out, nil
}

func (s *pgStore) GetCustomStickers(ctx context.Context, ids []string) ([]inventory.CustomSticker, error) {
	if len(ids) == 0 {
		return []inventory.CustomSticker{}, nil
	}
	var daos []CustomStickerDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom stickers: %w", err)
	}
	return toCustomStickers(daos), nil
}

func (s *pgStore) ListCustomStickersByUser(ctx context.Context, userID string) ([]inventory.CustomSticker, error) {
	var daos []CustomStickerDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom stickers: %w", err)
	}
	return toCustomStickers(daos), nil
}

func (s *pgStore) ListPublicCustomStickers(ctx context.Context, excludeUserID string, limit int) ([]inventory.CustomSticker, error) {
	var daos []CustomStickerDao
	q := s.db.NewSelect().
		Model(&daos).
		Where("is_public = TRUE").
		Where("user_id <> ?", excludeUserID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list public custom stickers: %w", err)
	}
	return toCustomStickers(daos), nil
}

func toCustomStickers(daos []CustomStickerDao) []inventory.CustomSticker {
	out := make([]inventory.CustomSticker, len(daos))
	for i := range daos {
		out[i] = toCustomSticker(&daos[i])
	}
	return out
}
