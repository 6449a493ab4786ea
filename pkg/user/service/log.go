package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/user"
)

const serviceName = "ProfileService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the profile Service.
// It logs method entry/exit, duration and errors. Emails are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// GetProfile wraps the service method with logging
func (ls *logService) GetProfile(ctx context.Context, userID string) (u *user.User, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("GetProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "GetProfile"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("GetProfile completed",
			zap.String("service", serviceName),
			zap.String("method", "GetProfile"),
			zap.String("user_id", userID),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetProfile(ctx, userID)
}

// UpdateProfile wraps the service method with logging
func (ls *logService) UpdateProfile(
	ctx context.Context,
	userID string,
	req *user.UpdateProfileRequest,
) (u *user.User, err error) {
	start := time.Now()

	ls.logger.Info("UpdateProfile started",
		zap.String("service", serviceName),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", userID),
		zap.Bool("name", req.Name != nil),
		zap.Bool("image", req.Image != nil),
		zap.Bool("handle", req.Handle != nil),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("UpdateProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "UpdateProfile"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("UpdateProfile completed",
			zap.String("service", serviceName),
			zap.String("method", "UpdateProfile"),
			zap.String("user_id", userID),
			zap.String("handle", u.Handle),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.UpdateProfile(ctx, userID, req)
}
