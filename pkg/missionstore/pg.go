package missionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/mission"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the mission store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ListMissions(ctx context.Context) ([]*mission.Mission, error) {
	var daos []MissionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("active = TRUE").
		Order("period ASC", "code ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	out := make([]*mission.Mission, len(daos))
	for i := range daos {
		out[i] = toMission(&daos[i])
	}
	return out, nil
}

func (s *pgStore) GetMissionByCode(ctx context.Context, code string) (*mission.Mission, error) {
	dao := new(MissionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("code = ?", code).
		Where("active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return toMission(dao), nil
}

// IncrementProgress records one unit of progress for the period starting at
// periodStart, creating the row on first use. Progress never exceeds the
// mission target.
func (s *pgStore) IncrementProgress(
	ctx context.Context,
	userID string,
	m *mission.Mission,
	periodStart, now time.Time,
) (*Increment, error) {
	var inc *Increment

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row struct {
			ID        string `bun:"id"`
			Progress  int    `bun:"progress"`
			Completed bool   `bun:"completed"`
		}
		err := tx.NewRaw(`
			INSERT INTO mission_users (id, user_id, mission_id, period_start, progress, created_at, updated_at)
			VALUES (?, ?, ?, ?, 1, ?, ?)
			ON CONFLICT (user_id, mission_id, period_start)
			DO UPDATE SET progress = LEAST(?, mission_users.progress + 1), updated_at = EXCLUDED.updated_at
			RETURNING id, progress, completed`,
			uuid.NewString(), userID, m.ID, periodStart, now, now, m.Target,
		).Scan(ctx, &row)
		if err != nil {
			return fmt.Errorf("failed to upsert mission progress: %w", err)
		}

		justCompleted := false
		if row.Progress >= m.Target && !row.Completed {
			res, err := tx.NewUpdate().
				Model((*MissionUserDao)(nil)).
				Set("completed = TRUE").
				Set("completed_at = ?", now).
				Where("id = ?", row.ID).
				Where("completed = FALSE").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to complete mission: %w", err)
			}
			n, _ := res.RowsAffected()
			justCompleted = n == 1
		}

		dao := new(MissionUserDao)
		err = tx.NewSelect().
			Model(dao).
			Relation("Mission").
			Where("mu.id = ?", row.ID).
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to read mission progress: %w", err)
		}

		p := toProgress(dao)
		inc = &Increment{Progress: &p, JustCompleted: justCompleted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inc, nil
}

// ListProgress returns progress rows whose period started at or after since.
func (s *pgStore) ListProgress(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error) {
	var daos []MissionUserDao
	err := s.db.NewSelect().
		Model(&daos).
		Relation("Mission").
		Where("mu.user_id = ?", userID).
		Where("mu.period_start >= ?", since).
		Order("mu.period_start DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission progress: %w", err)
	}
	return toProgressList(daos), nil
}

// ListUnclaimed returns completed, unclaimed progress completed at or after since.
func (s *pgStore) ListUnclaimed(ctx context.Context, userID string, since time.Time) ([]mission.Progress, error) {
	var daos []MissionUserDao
	err := s.db.NewSelect().
		Model(&daos).
		Relation("Mission").
		Where("mu.user_id = ?", userID).
		Where("mu.completed = TRUE").
		Where("mu.claimed = FALSE").
		Where("mu.completed_at >= ?", since).
		Order("mu.completed_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed missions: %w", err)
	}
	return toProgressList(daos), nil
}

// ClaimReward marks the progress row claimed and credits the reward to the
// user's pet in one transaction.
func (s *pgStore) ClaimReward(ctx context.Context, userID, progressID string, now time.Time) (*Claim, error) {
	var claim *Claim

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		dao := new(MissionUserDao)
		err := tx.NewSelect().
			Model(dao).
			Relation("Mission").
			Where("mu.id = ?", progressID).
			Where("mu.user_id = ?", userID).
			For("UPDATE OF mu").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrProgressNotFound
			}
			return fmt.Errorf("failed to read mission progress: %w", err)
		}
		if !dao.Completed {
			return ErrNotCompleted
		}
		if dao.Claimed || dao.Mission == nil {
			return ErrAlreadyClaimed
		}

		res, err := tx.NewUpdate().
			Model((*MissionUserDao)(nil)).
			Set("claimed = TRUE").
			Set("claimed_at = ?", now).
			Set("updated_at = ?", now).
			Where("id = ?", dao.ID).
			Where("claimed = FALSE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to claim mission: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrAlreadyClaimed
		}

		var points int
		err = tx.NewUpdate().
			TableExpr("pets").
			Set("points = points + ?", dao.Mission.Reward).
			Set("updated_at = NOW()").
			Where("user_id = ?", userID).
			Returning("points").
			Scan(ctx, &points)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoPet
			}
			return fmt.Errorf("failed to credit reward: %w", err)
		}

		dao.Claimed = true
		dao.ClaimedAt = &now
		p := toProgress(dao)
		claim = &Claim{Progress: &p, PetPoints: points}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

func toProgressList(daos []MissionUserDao) []mission.Progress {
	out := make([]mission.Progress, len(daos))
	for i := range daos {
		out[i] = toProgress(&daos[i])
	}
	return out
}
