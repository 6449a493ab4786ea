package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finpet/finpet-api/internal/metrics"
	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/missionstore"
)

// Store is the narrow data-access interface for the mission service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListMissions(ctx context.Context) ([]*mission.Mission, error)
	GetMissionByCode(ctx context.Context, code string) (*mission.Mission, error)
	IncrementProgress(ctx context.Context, userID string, m *mission.Mission, periodStart, now time.Time) (*missionstore.Increment, error)
	ListProgress(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error)
	ListUnclaimed(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error)
	ClaimReward(ctx context.Context, userID, progressID string, now time.Time) (*missionstore.Claim, error)
}

// Service defines the interface for mission progress and rewards
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ListMissions returns the catalog with the caller's progress for the current periods.
	ListMissions(ctx context.Context, userID string) ([]mission.Status, error)
	// Claim pays out the reward of a completed progress row.
	Claim(ctx context.Context, userID, progressID string) (*mission.ClaimResult, error)
	// RecordProgress advances the mission identified by code for the current
	// period. It returns a Completion only for the step that completed it.
	RecordProgress(ctx context.Context, userID, code string) (*mission.Completion, error)
	// Unclaimed summarizes missions completed in the last 24 hours and not yet claimed.
	Unclaimed(ctx context.Context, userID string) ([]mission.Summary, error)
}

type missionService struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

// NewService creates a mission service. Periods are computed in loc.
func NewService(store Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &missionService{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *missionService) ListMissions(ctx context.Context, userID string) ([]mission.Status, error) {
	missions, err := s.store.ListMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	now := s.now()
	rows, err := s.store.ListProgress(ctx, userID, mission.EarliestPeriodStart(now, s.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to list mission progress: %w", err)
	}

	return mission.Statuses(missions, rows, now, s.loc), nil
}

func (s *missionService) Claim(ctx context.Context, userID, progressID string) (*mission.ClaimResult, error) {
	claim, err := s.store.ClaimReward(ctx, userID, progressID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, missionstore.ErrProgressNotFound):
			return nil, apperrors.ResourceNotFoundError(err, "mission not found")
		case errors.Is(err, missionstore.ErrNotCompleted):
			return nil, apperrors.BadRequestError(err, "mission not completed")
		case errors.Is(err, missionstore.ErrAlreadyClaimed):
			return nil, apperrors.ConflictError(err, "mission already claimed")
		case errors.Is(err, missionstore.ErrNoPet):
			return nil, apperrors.ResourceNotFoundError(err, "pet not found")
		}
		return nil, fmt.Errorf("failed to claim mission: %w", err)
	}

	metrics.MissionsClaimed.Inc()

	res := &mission.ClaimResult{
		ID:        claim.Progress.ID,
		MissionID: claim.Progress.MissionID,
		PetPoints: claim.PetPoints,
	}
	if claim.Progress.Mission != nil {
		res.Reward = claim.Progress.Mission.Reward
	}
	return res, nil
}

func (s *missionService) RecordProgress(ctx context.Context, userID, code string) (*mission.Completion, error) {
	m, err := s.store.GetMissionByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission %s: %w", code, err)
	}

	now := s.now()
	inc, err := s.store.IncrementProgress(ctx, userID, m, mission.PeriodStart(m.Period, now, s.loc), now)
	if err != nil {
		return nil, fmt.Errorf("failed to record progress on %s: %w", code, err)
	}
	if !inc.JustCompleted {
		return nil, nil
	}

	metrics.MissionsCompleted.WithLabelValues(m.Code).Inc()

	return &mission.Completion{
		ID:     inc.Progress.ID,
		Code:   m.Code,
		Title:  m.Title,
		Reward: m.Reward,
	}, nil
}

func (s *missionService) Unclaimed(ctx context.Context, userID string) ([]mission.Summary, error) {
	now := s.now()
	rows, err := s.store.ListUnclaimed(ctx, userID, now.Add(-mission.UnclaimedWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed missions: %w", err)
	}
	return mission.Unclaimed(rows, now), nil
}
