package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finpet/finpet-api/internal/metrics"
	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/ledgerstore"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/pet"
	"github.com/finpet/finpet-api/pkg/petstore"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

// Store is the narrow data-access interface for transactions and categories.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateTransaction(ctx context.Context, tx *ledger.Transaction) error
	ListTransactions(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Transaction, error)
	GetCategory(ctx context.Context, id string) (*ledger.Category, error)
	FindCategory(ctx context.Context, userID, name string, typ ledger.Type) (*ledger.Category, error)
	EnsureGlobalCategory(ctx context.Context, name string, typ ledger.Type) (*ledger.Category, error)
}

// UserStore resolves the caller and maintains the denormalized user balance.
//
//go:generate mockery --name UserStore --output mocks --outpkg mocks --filename mock_user_store.go --with-expecter
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	IncrementBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error)
}

// PetStore nudges the pet mood.
//
//go:generate mockery --name PetStore --output mocks --outpkg mocks --filename mock_pet_store.go --with-expecter
type PetStore interface {
	AdjustMood(ctx context.Context, userID string, delta int) (int, error)
}

// MissionRecorder advances mission progress.
type MissionRecorder interface {
	RecordProgress(ctx context.Context, userID, code string) (*mission.Completion, error)
}

// Service defines the interface for recording and listing transactions
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateTransaction(ctx context.Context, userID string, req *ledger.CreateRequest) (*ledger.CreateResult, error)
	ListTransactions(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Transaction, error)
}

type ledgerService struct {
	store    Store
	users    UserStore
	pets     PetStore
	missions MissionRecorder
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new ledger service
func NewService(
	store Store,
	users UserStore,
	pets PetStore,
	missions MissionRecorder,
	loc *time.Location,
	logger *zap.Logger,
) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &ledgerService{
		store:    store,
		users:    users,
		pets:     pets,
		missions: missions,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateTransaction validates and stores a transaction, then updates the
// balance, the pet mood and the transaction missions.
//
// Only the insert is authoritative. The follow-up steps run concurrently once
// it succeeded and their failures are logged and counted but never returned,
// so a transaction may exist without its balance or mission effect.
func (s *ledgerService) CreateTransaction(
	ctx context.Context,
	userID string,
	req *ledger.CreateRequest,
) (*ledger.CreateResult, error) {
	now := s.now()

	v, details := req.Validate(now, s.loc)
	if details != nil {
		return nil, apperrors.ValidationError(nil, details)
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	category, err := s.resolveCategory(ctx, userID, v)
	if err != nil {
		return nil, err
	}

	tx := &ledger.Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Amount:       v.Amount,
		Type:         v.Type,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Date:         v.Date,
		Note:         v.Note,
		CreatedAt:    now,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	metrics.TransactionsCreated.WithLabelValues(tx.Type.String()).Inc()
	metrics.TransactionAmount.WithLabelValues(tx.Type.String()).Observe(tx.Amount.InexactFloat64())

	res := &ledger.CreateResult{Transaction: tx}
	s.applySideEffects(ctx, tx, res)
	return res, nil
}

func (s *ledgerService) applySideEffects(ctx context.Context, tx *ledger.Transaction, res *ledger.CreateResult) {
	var (
		g              errgroup.Group
		daily, weekly  *mission.Completion
		newBalance     decimal.Decimal
		balanceUpdated bool
	)

	g.Go(func() error {
		balance, err := s.users.IncrementBalance(ctx, tx.UserID, tx.Type.Signed(tx.Amount))
		if err != nil {
			s.sideEffectFailed("balance", tx, err)
			return nil
		}
		newBalance, balanceUpdated = balance, true
		return nil
	})

	g.Go(func() error {
		delta := pet.MoodNudge(tx.Amount, tx.Type == ledger.Income)
		if delta == 0 {
			return nil
		}
		if _, err := s.pets.AdjustMood(ctx, tx.UserID, delta); err != nil {
			if errors.Is(err, petstore.ErrPetNotFound) {
				return nil
			}
			s.sideEffectFailed("mood", tx, err)
		}
		return nil
	})

	g.Go(func() error {
		c, err := s.missions.RecordProgress(ctx, tx.UserID, mission.CodeDailyTransaction)
		if err != nil {
			s.sideEffectFailed("mission_daily", tx, err)
			return nil
		}
		daily = c
		return nil
	})

	g.Go(func() error {
		c, err := s.missions.RecordProgress(ctx, tx.UserID, mission.CodeWeeklyTransaction)
		if err != nil {
			s.sideEffectFailed("mission_weekly", tx, err)
			return nil
		}
		weekly = c
		return nil
	})

	_ = g.Wait()

	if balanceUpdated {
		res.NewBalance = &newBalance
	}
	if daily != nil {
		res.MissionCompleted = daily
	} else {
		res.MissionCompleted = weekly
	}
}

func (s *ledgerService) sideEffectFailed(step string, tx *ledger.Transaction, err error) {
	metrics.SideEffectFailures.WithLabelValues(step).Inc()
	s.logger.Warn("Transaction side effect failed",
		zap.String("step", step),
		zap.String("user_id", tx.UserID),
		zap.String("transaction_id", tx.ID),
		zap.Error(err),
	)
}

// resolveCategory picks the category by id, then by name in the user's and the
// global scope, and falls back to the global "Other" category of the type.
func (s *ledgerService) resolveCategory(ctx context.Context, userID string, v *ledger.Validated) (*ledger.Category, error) {
	if v.CategoryID != "" {
		c, err := s.store.GetCategory(ctx, v.CategoryID)
		if err != nil {
			if errors.Is(err, ledgerstore.ErrCategoryNotFound) {
				return nil, apperrors.ValidationError(err, map[string]string{"categoryId": "unknown category"})
			}
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		if !c.VisibleTo(userID) {
			return nil, apperrors.ValidationError(nil, map[string]string{"categoryId": "unknown category"})
		}
		if c.Type != v.Type {
			return nil, apperrors.ValidationError(nil, map[string]string{"categoryId": "does not match type"})
		}
		return c, nil
	}

	if v.Category != "" {
		c, err := s.store.FindCategory(ctx, userID, v.Category, v.Type)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, ledgerstore.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	c, err := s.store.EnsureGlobalCategory(ctx, ledger.OtherCategory, v.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fallback category: %w", err)
	}
	return c, nil
}

func (s *ledgerService) ListTransactions(
	ctx context.Context,
	userID string,
	filter ledger.ListFilter,
) ([]*ledger.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
