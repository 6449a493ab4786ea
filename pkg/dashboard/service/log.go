package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/dashboard"
)

const serviceName = "DashboardService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the dashboard Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method, userID string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	if err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.String("user_id", userID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	ls.logger.Debug(method+" completed", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("user_id", userID),
		zap.Duration("duration", duration),
	}, fields...)...)
}

// GetDashboard wraps the service method with logging
func (ls *logService) GetDashboard(ctx context.Context, userID string) (p *dashboard.Payload, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("GetDashboard", userID, start, err)
			return
		}
		ls.done("GetDashboard", userID, start, nil,
			zap.Int("mood", p.Pet.Mood),
			zap.Int("fullness", p.Pet.Fullness),
			zap.Bool("has_unclaimed_missions", p.HasUnclaimedMissions),
		)
	}()

	return ls.svc.GetDashboard(ctx, userID)
}

// GetFullDashboard wraps the service method with logging
func (ls *logService) GetFullDashboard(ctx context.Context, userID string) (p *dashboard.FullPayload, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("GetFullDashboard", userID, start, err)
			return
		}
		ls.done("GetFullDashboard", userID, start, nil, zap.Int("recent_transactions", len(p.RecentTransactions)))
	}()

	return ls.svc.GetFullDashboard(ctx, userID)
}

// GetPetRoom wraps the service method with logging
func (ls *logService) GetPetRoom(ctx context.Context, userID string) (room *dashboard.Room, err error) {
	start := time.Now()
	defer func() { ls.done("GetPetRoom", userID, start, err) }()

	return ls.svc.GetPetRoom(ctx, userID)
}

// GetVisitRoom wraps the service method with logging
func (ls *logService) GetVisitRoom(ctx context.Context, ownerID string) (room *dashboard.VisitRoom, err error) {
	start := time.Now()
	defer func() { ls.done("GetVisitRoom", ownerID, start, err) }()

	return ls.svc.GetVisitRoom(ctx, ownerID)
}
