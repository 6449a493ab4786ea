package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/ledger"
)

const serviceName = "LedgerService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ledger Service.
// Amounts are logged, notes are not.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateTransaction wraps the service method with logging
func (ls *logService) CreateTransaction(
	ctx context.Context,
	userID string,
	req *ledger.CreateRequest,
) (res *ledger.CreateResult, err error) {
	start := time.Now()

	ls.logger.Info("CreateTransaction started",
		zap.String("service", serviceName),
		zap.String("method", "CreateTransaction"),
		zap.String("user_id", userID),
		zap.String("amount", req.Amount.String()),
		zap.String("type", req.Type),
		zap.Int("type_id", req.TypeID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("CreateTransaction failed",
				zap.String("service", serviceName),
				zap.String("method", "CreateTransaction"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "CreateTransaction"),
			zap.String("user_id", userID),
			zap.String("transaction_id", res.Transaction.ID),
			zap.String("category", res.Transaction.CategoryName),
			zap.Bool("balance_updated", res.NewBalance != nil),
			zap.Duration("duration", duration),
		}
		if res.MissionCompleted != nil {
			fields = append(fields, zap.String("mission_completed", res.MissionCompleted.Code))
		}
		ls.logger.Info("CreateTransaction completed", fields...)
	}()

	return ls.svc.CreateTransaction(ctx, userID, req)
}

// ListTransactions wraps the service method with logging
func (ls *logService) ListTransactions(
	ctx context.Context,
	userID string,
	filter ledger.ListFilter,
) (txs []*ledger.Transaction, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Error("ListTransactions failed",
				zap.String("service", serviceName),
				zap.String("method", "ListTransactions"),
				zap.String("user_id", userID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("ListTransactions completed",
			zap.String("service", serviceName),
			zap.String("user_id", userID),
			zap.Int("count", len(txs)),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.ListTransactions(ctx, userID, filter)
}
