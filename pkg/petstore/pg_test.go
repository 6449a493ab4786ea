package petstore

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/pet"
	"github.com/finpet/finpet-api/pkg/pgutil"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	err := mghelper.CreateSchema(ctx, db,
		&PetDao{}, &PurchaseDao{}, &RoomStickerDao{}, &PetAccessoryDao{}, &CustomStickerDao{},
	)
	require.NoError(t, err, "failed to create schema")

	return ctx, NewStore(db)
}

func requireDockerAccess(t *testing.T) {
	t.Helper()

	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed petstore tests")
}

func TestPetPGStore_CreatePetIsIdempotent(t *testing.T) {
	ctx, s := setupStore(t)
	now := time.Now()

	_, err := s.GetPetByUserID(ctx, "u1")
	require.ErrorIs(t, err, ErrPetNotFound)

	first, err := s.CreatePet(ctx, pet.NewDefault(uuid.NewString(), "u1", now, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 50, first.Points)
	assert.Equal(t, 70, first.Mood)
	assert.Equal(t, 70, first.Fullness)

	second, err := s.CreatePet(ctx, pet.NewDefault(uuid.NewString(), "u1", now, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a concurrent lazy create must return the existing pet")
}

func TestPetPGStore_SwapDailyState(t *testing.T) {
	ctx, s := setupStore(t)
	loc := time.UTC
	yesterday := time.Now().Add(-24 * time.Hour)

	stored, err := s.CreatePet(ctx, pet.NewDefault(uuid.NewString(), "u1", yesterday, loc))
	require.NoError(t, err)

	tr := pet.ApplyDailyTransition(*stored, time.Now(), loc, pet.DefaultRules())
	require.True(t, tr.Changed)

	ok, err := s.SwapDailyState(ctx, stored, &tr.Pet)
	require.NoError(t, err)
	assert.True(t, ok)

	// a second writer that read the same stale row loses the race
	ok, err = s.SwapDailyState(ctx, stored, &tr.Pet)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.GetPetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, tr.Pet.Mood, got.Mood)
	assert.Equal(t, tr.Pet.Fullness, got.Fullness)
	assert.Equal(t, 2, got.ConsecutiveLoginDays)
	require.NotNil(t, got.LastDailyReset)
	assert.True(t, got.LastDailyReset.Equal(*tr.Pet.LastDailyReset))
}

func TestPetPGStore_AdjustMoodClamps(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.CreatePet(ctx, pet.NewDefault(uuid.NewString(), "u1", time.Now(), time.UTC))
	require.NoError(t, err)

	mood, err := s.AdjustMood(ctx, "u1", 500)
	require.NoError(t, err)
	assert.Equal(t, pet.MaxStat, mood)

	mood, err = s.AdjustMood(ctx, "u1", -500)
	require.NoError(t, err)
	assert.Equal(t, pet.MinStat, mood)

	_, err = s.AdjustMood(ctx, "nobody", 1)
	assert.True(t, errors.Is(err, ErrPetNotFound))
}

func TestPetPGStore_ItemsAndInventory(t *testing.T) {
	ctx, s := setupStore(t)
	p, err := s.CreatePet(ctx, pet.NewDefault(uuid.NewString(), "u1", time.Now(), time.UTC))
	require.NoError(t, err)

	cs := &inventory.CustomSticker{ID: uuid.NewString(), UserID: "u1", Name: "Cat", ImageURL: "https://img/cat.png", IsPublic: true}
	other := &inventory.CustomSticker{ID: uuid.NewString(), UserID: "u2", Name: "Dog", ImageURL: "https://img/dog.png", IsPublic: true}
	private := &inventory.CustomSticker{ID: uuid.NewString(), UserID: "u3", Name: "Secret", ImageURL: "https://img/s.png"}
	for _, c := range []*inventory.CustomSticker{cs, other, private} {
		require.NoError(t, s.CreateCustomSticker(ctx, c))
	}

	purchases := []*inventory.Purchase{
		{ID: uuid.NewString(), UserID: "u1", ItemID: "sticker-a", Category: "sticker", Quantity: 3, Cost: 30},
		{ID: uuid.NewString(), UserID: "u1", ItemID: "custom-" + cs.ID, Category: "sticker", Quantity: 1, Cost: 5},
		{ID: uuid.NewString(), UserID: "u2", ItemID: "sticker-a", Category: "sticker", Quantity: 9, Cost: 90},
	}
	for _, pp := range purchases {
		require.NoError(t, s.CreatePurchase(ctx, pp))
	}
	require.NoError(t, s.CreateRoomSticker(ctx, &inventory.RoomSticker{ID: uuid.NewString(), PetID: p.ID, StickerID: "sticker-a", Scale: 1}))
	require.NoError(t, s.CreatePetAccessory(ctx, &inventory.PetAccessory{ID: uuid.NewString(), PetID: p.ID, AccessoryID: "acc-hat", Size: 1}))

	ledger, err := s.ListPurchases(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ledger, 2)

	placed, err := s.ListRoomStickers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, placed, 1)

	worn, err := s.ListPetAccessories(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, worn, 1)
	assert.Equal(t, "acc-hat", worn[0].AccessoryID)

	inv := inventory.Build(ledger, []string{placed[0].StickerID}, nil, nil)
	require.Len(t, inv.Stickers, 2)
	for _, e := range inv.Stickers {
		if e.ItemID == "sticker-a" {
			assert.Equal(t, 2, e.Count)
		}
	}

	got, err := s.GetCustomStickers(ctx, inventory.CustomIDs(ledger))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cat", got[0].Name)

	mine, err := s.ListCustomStickersByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	public, err := s.ListPublicCustomStickers(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Dog", public[0].Name)

	empty, err := s.GetCustomStickers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
