package missionstore

import (
	"context"
	"errors"
	"time"

	"github.com/finpet/finpet-api/pkg/mission"
)

var (
	// ErrMissionNotFound is returned when no mission matches a lookup.
	ErrMissionNotFound = errors.New("mission not found")
	// ErrProgressNotFound is returned when the user has no such progress row.
	ErrProgressNotFound = errors.New("mission progress not found")
	// ErrNotCompleted is returned when claiming a mission that is not complete.
	ErrNotCompleted = errors.New("mission not completed")
	// ErrAlreadyClaimed is returned when a reward was already paid out.
	ErrAlreadyClaimed = errors.New("mission already claimed")
	// ErrNoPet is returned when the reward cannot be paid because the user has no pet.
	ErrNoPet = errors.New("user has no pet")
)

// Increment is the outcome of recording progress.
type Increment struct {
	Progress *mission.Progress
	// JustCompleted is true only for the increment that completed the mission.
	JustCompleted bool
}

// Claim is the outcome of a successful claim.
type Claim struct {
	Progress  *mission.Progress
	PetPoints int
}

// Store defines the interface for mission persistence
type Store interface {
	ListMissions(ctx context.Context) ([]*mission.Mission, error)
	GetMissionByCode(ctx context.Context, code string) (*mission.Mission, error)
	IncrementProgress(ctx context.Context, userID string, m *mission.Mission, periodStart, now time.Time) (*Increment, error)
	ListProgress(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error)
	ListUnclaimed(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error)
	ClaimReward(ctx context.Context, userID, progressID string, now time.Time) (*Claim, error)
}
