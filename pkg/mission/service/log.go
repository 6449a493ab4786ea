package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/mission"
)

const serviceName = "MissionService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the mission Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// ListMissions is a read path and only logs failures
func (ls *logService) ListMissions(ctx context.Context, userID string) (statuses []mission.Status, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("ListMissions failed",
				zap.String("service", serviceName),
				zap.String("method", "ListMissions"),
				zap.String("user_id", userID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.ListMissions(ctx, userID)
}

// Claim wraps the service method with logging
func (ls *logService) Claim(ctx context.Context, userID, progressID string) (res *mission.ClaimResult, err error) {
	start := time.Now()

	ls.logger.Info("Claim started",
		zap.String("service", serviceName),
		zap.String("method", "Claim"),
		zap.String("user_id", userID),
		zap.String("progress_id", progressID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Claim failed",
				zap.String("service", serviceName),
				zap.String("method", "Claim"),
				zap.String("user_id", userID),
				zap.String("progress_id", progressID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Claim completed",
				zap.String("service", serviceName),
				zap.String("method", "Claim"),
				zap.String("user_id", userID),
				zap.String("mission_id", res.MissionID),
				zap.Int("reward", res.Reward),
				zap.Int("pet_points", res.PetPoints),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Claim(ctx, userID, progressID)
}

// RecordProgress wraps the service method with logging
func (ls *logService) RecordProgress(ctx context.Context, userID, code string) (c *mission.Completion, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		switch {
		case err != nil:
			ls.logger.Error("RecordProgress failed",
				zap.String("service", serviceName),
				zap.String("method", "RecordProgress"),
				zap.String("user_id", userID),
				zap.String("code", code),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		case c != nil:
			ls.logger.Info("Mission completed",
				zap.String("service", serviceName),
				zap.String("method", "RecordProgress"),
				zap.String("user_id", userID),
				zap.String("code", code),
				zap.Int("reward", c.Reward),
				zap.Duration("duration", duration),
			)
		default:
			ls.logger.Debug("RecordProgress completed",
				zap.String("service", serviceName),
				zap.String("user_id", userID),
				zap.String("code", code),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.RecordProgress(ctx, userID, code)
}

// Unclaimed is a read path and only logs failures
func (ls *logService) Unclaimed(ctx context.Context, userID string) (summaries []mission.Summary, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("Unclaimed failed",
				zap.String("service", serviceName),
				zap.String("method", "Unclaimed"),
				zap.String("user_id", userID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.Unclaimed(ctx, userID)
}
