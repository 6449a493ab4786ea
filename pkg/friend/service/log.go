package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/friend"
)

const serviceName = "FriendService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the friend Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method, userID string, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("user_id", userID),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		ls.logger.Error(method+" failed", append(append(base, fields...), zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

// List wraps the service method with logging
func (ls *logService) List(ctx context.Context, userID string) (o *friend.Overview, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("List", userID, start, err)
			return
		}
		ls.done("List", userID, start, nil,
			zap.Int("friends", len(o.Friends)),
			zap.Int("incoming", len(o.Incoming)),
		)
	}()

	return ls.svc.List(ctx, userID)
}

// Invite wraps the service method with logging
func (ls *logService) Invite(ctx context.Context, userID string, req *friend.InviteRequest) (p *friend.Profile, err error) {
	start := time.Now()
	defer func() { ls.done("Invite", userID, start, err, zap.String("handle", req.Handle)) }()

	return ls.svc.Invite(ctx, userID, req)
}

// Accept wraps the service method with logging
func (ls *logService) Accept(ctx context.Context, userID, friendshipID string) (p *friend.Profile, err error) {
	start := time.Now()
	defer func() { ls.done("Accept", userID, start, err, zap.String("friendship_id", friendshipID)) }()

	return ls.svc.Accept(ctx, userID, friendshipID)
}

// PendingCount is not logged; the dashboard calls it on every load.
func (ls *logService) PendingCount(ctx context.Context, userID string) (int, error) {
	return ls.svc.PendingCount(ctx, userID)
}

// Visit wraps the service method with logging
func (ls *logService) Visit(ctx context.Context, userID, friendUserID string) (v *friend.Visit, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("friend_id", friendUserID)}
		if v != nil && v.MissionCompleted != nil {
			fields = append(fields, zap.String("mission_completed", v.MissionCompleted.Code))
		}
		ls.done("Visit", userID, start, err, fields...)
	}()

	return ls.svc.Visit(ctx, userID, friendUserID)
}
