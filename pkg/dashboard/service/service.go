package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finpet/finpet-api/internal/metrics"
	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/pet"
	"github.com/finpet/finpet-api/pkg/petstore"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

const (
	// maxSwapAttempts bounds re-reads after losing the daily transition race.
	maxSwapAttempts = 3
	// publicStickerLimit caps the shared stickers shown in the room.
	publicStickerLimit = 50
)

// UserStore reads the user row and the pending invitation count.
//
//go:generate mockery --name UserStore --output mocks --outpkg mocks --filename mock_user_store.go --with-expecter
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	CountPendingInvitations(ctx context.Context, userID string) (int, error)
}

// PetStore reads and persists pets and everything placed in their rooms.
//
//go:generate mockery --name PetStore --output mocks --outpkg mocks --filename mock_pet_store.go --with-expecter
type PetStore interface {
	GetPetByUserID(ctx context.Context, userID string) (*pet.Pet, error)
	CreatePet(ctx context.Context, p *pet.Pet) (*pet.Pet, error)
	SwapDailyState(ctx context.Context, prev, next *pet.Pet) (bool, error)
	ListPurchases(ctx context.Context, userID string) ([]inventory.Purchase, error)
	ListRoomStickers(ctx context.Context, petID string) ([]inventory.RoomSticker, error)
	ListPetAccessories(ctx context.Context, petID string) ([]inventory.PetAccessory, error)
	GetCustomStickers(ctx context.Context, ids []string) ([]inventory.CustomSticker, error)
	ListCustomStickersByUser(ctx context.Context, userID string) ([]inventory.CustomSticker, error)
	ListPublicCustomStickers(ctx context.Context, excludeUserID string, limit int) ([]inventory.CustomSticker, error)
}

// LedgerStore reads transaction history.
//
//go:generate mockery --name LedgerStore --output mocks --outpkg mocks --filename mock_ledger_store.go --with-expecter
type LedgerStore interface {
	ListTransactions(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Transaction, error)
	MonthlyTotals(ctx context.Context, userID string, from, to time.Time) (ledger.MonthlyTotals, error)
}

// MissionReader summarizes unclaimed missions.
type MissionReader interface {
	Unclaimed(ctx context.Context, userID string) ([]mission.Summary, error)
}

// Service builds the aggregated dashboard payloads
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetDashboard(ctx context.Context, userID string) (*dashboard.Payload, error)
	GetFullDashboard(ctx context.Context, userID string) (*dashboard.FullPayload, error)
	GetPetRoom(ctx context.Context, userID string) (*dashboard.Room, error)
	// GetVisitRoom returns another user's room as-is. No daily transition is
	// applied and no pet is created.
	GetVisitRoom(ctx context.Context, ownerID string) (*dashboard.VisitRoom, error)
}

type dashboardService struct {
	users    UserStore
	pets     PetStore
	ledger   LedgerStore
	missions MissionReader
	rules    pet.Rules
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new dashboard service. "Today" is evaluated in loc.
func NewService(
	users UserStore,
	pets PetStore,
	ledgerStore LedgerStore,
	missions MissionReader,
	rules pet.Rules,
	loc *time.Location,
	logger *zap.Logger,
) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		users:    users,
		pets:     pets,
		ledger:   ledgerStore,
		missions: missions,
		rules:    rules,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// loadOptions selects the optional parts of a snapshot.
type loadOptions struct {
	summaries bool
	history   bool
	creations bool
}

// snapshot holds everything read for one request. Each field is written by
// exactly one goroutine of the fan-out.
type snapshot struct {
	user        *user.User
	pet         *pet.Pet
	purchases   []inventory.Purchase
	stickers    []inventory.RoomSticker
	accessories []inventory.PetAccessory
	customs     map[string]inventory.CustomSticker

	unclaimed []mission.Summary
	pending   int

	totals ledger.MonthlyTotals
	recent []*ledger.Transaction

	own    []inventory.CustomSticker
	public []inventory.CustomSticker
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*dashboard.Payload, error) {
	defer observe("fast", time.Now())

	snap, err := s.load(ctx, userID, loadOptions{summaries: true})
	if err != nil {
		return nil, err
	}
	return buildPayload(snap), nil
}

func (s *dashboardService) GetFullDashboard(ctx context.Context, userID string) (*dashboard.FullPayload, error) {
	defer observe("full", time.Now())

	snap, err := s.load(ctx, userID, loadOptions{summaries: true, history: true})
	if err != nil {
		return nil, err
	}
	return &dashboard.FullPayload{
		Payload:            *buildPayload(snap),
		MonthlyTotals:      snap.totals,
		RecentTransactions: snap.recent,
	}, nil
}

func (s *dashboardService) GetPetRoom(ctx context.Context, userID string) (*dashboard.Room, error) {
	defer observe("room", time.Now())

	snap, err := s.load(ctx, userID, loadOptions{creations: true})
	if err != nil {
		return nil, err
	}

	inv := inventory.Build(snap.purchases, dashboard.StickerIDs(snap.stickers), dashboard.AccessoryIDs(snap.accessories), snap.customs)
	placed, worn := dashboard.Place(snap.stickers, snap.accessories, snap.customs)

	return &dashboard.Room{
		UserBalance:        snap.user.Balance,
		Pet:                dashboard.NewRoomPet(snap.pet),
		Stickers:           placed,
		StickerInventory:   inv.Stickers,
		FoodInventory:      inv.Food,
		Accessories:        worn,
		AccessoryInventory: inv.Accessories,
		CustomStickers:     nonNil(snap.own),
		PublicStickers:     nonNil(snap.public),
	}, nil
}

func (s *dashboardService) GetVisitRoom(ctx context.Context, ownerID string) (*dashboard.VisitRoom, error) {
	defer observe("visit", time.Now())

	p, err := s.pets.GetPetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, petstore.ErrPetNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "pet not found")
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	var (
		stickers    []inventory.RoomSticker
		accessories []inventory.PetAccessory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stickers, err = s.pets.ListRoomStickers(gctx, p.ID)
		return err
	})
	g.Go(func() (err error) {
		accessories, err = s.pets.ListPetAccessories(gctx, p.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	customs := s.loadCustoms(ctx, inventory.CustomIDs(nil, dashboard.StickerIDs(stickers)))
	placed, worn := dashboard.Place(stickers, accessories, customs)

	return &dashboard.VisitRoom{
		Pet:         dashboard.NewRoomPet(p),
		Stickers:    placed,
		Accessories: worn,
	}, nil
}

// load reads the user first so a missing user row is reported as such, then
// fans the remaining queries out and joins them.
func (s *dashboardService) load(ctx context.Context, userID string, opts loadOptions) (*snapshot, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	snap := &snapshot{user: u}
	now := s.now()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.resolvePet(gctx, userID, now)
		if err != nil {
			return err
		}
		snap.pet = p

		pg, pctx := errgroup.WithContext(gctx)
		pg.Go(func() (err error) {
			snap.stickers, err = s.pets.ListRoomStickers(pctx, p.ID)
			return err
		})
		pg.Go(func() (err error) {
			snap.accessories, err = s.pets.ListPetAccessories(pctx, p.ID)
			return err
		})
		if err := pg.Wait(); err != nil {
			return fmt.Errorf("failed to load placements: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		purchases, err := s.pets.ListPurchases(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list purchases: %w", err)
		}
		snap.purchases = purchases
		return nil
	})

	if opts.summaries {
		g.Go(func() error {
			unclaimed, err := s.missions.Unclaimed(gctx, userID)
			if err != nil {
				s.degraded("missions", userID, err)
				unclaimed = []mission.Summary{}
			}
			snap.unclaimed = unclaimed
			return nil
		})
		g.Go(func() error {
			pending, err := s.users.CountPendingInvitations(gctx, userID)
			if err != nil {
				s.degraded("invitations", userID, err)
				pending = 0
			}
			snap.pending = pending
			return nil
		})
	}

	if opts.history {
		from, to := monthBounds(now, s.loc)
		g.Go(func() error {
			totals, err := s.ledger.MonthlyTotals(gctx, userID, from, to)
			if err != nil {
				return fmt.Errorf("failed to compute monthly totals: %w", err)
			}
			snap.totals = totals
			return nil
		})
		g.Go(func() error {
			recent, err := s.ledger.ListTransactions(gctx, userID, ledger.ListFilter{Limit: dashboard.RecentTransactions})
			if err != nil {
				return fmt.Errorf("failed to list recent transactions: %w", err)
			}
			snap.recent = recent
			return nil
		})
	}

	if opts.creations {
		g.Go(func() error {
			own, err := s.pets.ListCustomStickersByUser(gctx, userID)
			if err != nil {
				return fmt.Errorf("failed to list custom stickers: %w", err)
			}
			snap.own = own
			return nil
		})
		g.Go(func() error {
			public, err := s.pets.ListPublicCustomStickers(gctx, userID, publicStickerLimit)
			if err != nil {
				s.degraded("public_stickers", userID, err)
				public = nil
			}
			snap.public = public
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := inventory.CustomIDs(snap.purchases, dashboard.StickerIDs(snap.stickers))
	snap.customs = s.loadCustoms(ctx, ids)

	if snap.recent == nil && opts.history {
		snap.recent = []*ledger.Transaction{}
	}
	return snap, nil
}

// resolvePet returns the user's pet with today's transition applied,
// creating the pet on first use.
func (s *dashboardService) resolvePet(ctx context.Context, userID string, now time.Time) (*pet.Pet, error) {
	p, err := s.pets.GetPetByUserID(ctx, userID)
	if errors.Is(err, petstore.ErrPetNotFound) {
		p, err = s.pets.CreatePet(ctx, pet.NewDefault(uuid.NewString(), userID, now, s.loc))
		if err != nil {
			return nil, fmt.Errorf("failed to create pet: %w", err)
		}
		metrics.DailyTransitions.WithLabelValues("created").Inc()
	} else if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	for attempt := 0; attempt < maxSwapAttempts; attempt++ {
		t := pet.ApplyDailyTransition(*p, now, s.loc, s.rules)
		if !t.Changed {
			return p, nil
		}

		ok, err := s.pets.SwapDailyState(ctx, p, &t.Pet)
		if err != nil {
			return nil, fmt.Errorf("failed to apply daily transition: %w", err)
		}
		if ok {
			recordTransition(t)
			next := t.Pet
			return &next, nil
		}

		// another request applied today's transition first
		metrics.DailyTransitions.WithLabelValues("conflict").Inc()
		p, err = s.pets.GetPetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read pet: %w", err)
		}
	}
	return p, nil
}

// loadCustoms resolves custom sticker metadata. A failed lookup leaves the
// map empty so the items render as placeholders.
func (s *dashboardService) loadCustoms(ctx context.Context, ids []string) map[string]inventory.CustomSticker {
	if len(ids) == 0 {
		return map[string]inventory.CustomSticker{}
	}
	customs, err := s.pets.GetCustomStickers(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to load custom stickers, using placeholders",
			zap.Int("count", len(ids)),
			zap.Error(err),
		)
		return map[string]inventory.CustomSticker{}
	}
	return dashboard.Index(customs)
}

func (s *dashboardService) degraded(part, userID string, err error) {
	metrics.ErrorsTotal.WithLabelValues("dashboard", part).Inc()
	s.logger.Warn("Dashboard sub-query failed, serving empty summary",
		zap.String("part", part),
		zap.String("user_id", userID),
		zap.Error(err),
	)
}

func buildPayload(snap *snapshot) *dashboard.Payload {
	inv := inventory.Build(snap.purchases, dashboard.StickerIDs(snap.stickers), dashboard.AccessoryIDs(snap.accessories), snap.customs)
	placed, worn := dashboard.Place(snap.stickers, snap.accessories, snap.customs)

	unclaimed := snap.unclaimed
	if unclaimed == nil {
		unclaimed = []mission.Summary{}
	}

	return &dashboard.Payload{
		UserBalance:          snap.user.Balance,
		Pet:                  snap.pet,
		Stickers:             placed,
		StickerInventory:     inv.Stickers,
		FoodInventory:        inv.Food,
		Accessories:          worn,
		AccessoryInventory:   inv.Accessories,
		HasUnclaimedMissions: len(unclaimed) > 0,
		UnclaimedMissions:    unclaimed,
		PendingInvitations:   snap.pending,
	}
}

func recordTransition(t pet.Transition) {
	if t.Decayed {
		metrics.DailyTransitions.WithLabelValues("decay").Inc()
	}
	if t.LoggedIn {
		metrics.DailyTransitions.WithLabelValues("login").Inc()
	}
	if t.StreakBonus {
		metrics.DailyTransitions.WithLabelValues("streak_bonus").Inc()
	}
}

func observe(variant string, start time.Time) {
	metrics.DashboardDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
}

// monthBounds returns the first instant of now's month in loc and of the next month.
func monthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	from := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

func nonNil(list []inventory.CustomSticker) []inventory.CustomSticker {
	if list == nil {
		return []inventory.CustomSticker{}
	}
	return list
}
