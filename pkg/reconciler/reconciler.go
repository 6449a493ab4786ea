// Package reconciler repairs denormalized user balances from the transaction ledger.
//
// Balances are maintained by best-effort increments after each transaction
// insert, so a failed increment leaves the stored balance behind the ledger.
// The reconciler periodically finds such users and rewrites their balance.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/internal/metrics"
	"github.com/finpet/finpet-api/pkg/ledger"
)

const runTimeout = 2 * time.Minute

// Store finds and corrects drifted balances.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	FindBalanceDrift(ctx context.Context, quietSince time.Time, limit int) ([]ledger.BalanceDrift, error)
	CorrectBalance(ctx context.Context, d ledger.BalanceDrift) (bool, error)
}

// Result summarizes one reconciliation run.
type Result struct {
	Found     int
	Corrected int
	Skipped   int
}

// Reconciler handles synchronization between the ledger and cached balances
type Reconciler struct {
	store     Store
	quiet     time.Duration
	batchSize int
	logger    *zap.Logger
	now       func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a new Reconciler. Users with a transaction younger than quiet
// are left alone for this run.
func New(store Store, quiet time.Duration, batchSize int, logger *zap.Logger) *Reconciler {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Reconciler{
		store:     store,
		quiet:     quiet,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// ReconcileAll corrects every drifted balance, one batch at a time. A balance
// that moved between detection and correction is skipped and picked up by the
// next run.
func (r *Reconciler) ReconcileAll(ctx context.Context) (Result, error) {
	start := r.now()
	defer func() { metrics.ReconcileDuration.Observe(time.Since(start).Seconds()) }()

	var res Result
	quietSince := start.Add(-r.quiet)
	for {
		drift, err := r.store.FindBalanceDrift(ctx, quietSince, r.batchSize)
		if err != nil {
			return res, fmt.Errorf("failed to find drifted balances: %w", err)
		}
		res.Found += len(drift)

		corrected := 0
		for _, d := range drift {
			ok, err := r.store.CorrectBalance(ctx, d)
			if err != nil {
				return res, fmt.Errorf("failed to correct balance of %s: %w", d.UserID, err)
			}
			if !ok {
				res.Skipped++
				metrics.BalanceCorrections.WithLabelValues("skipped").Inc()
				continue
			}
			corrected++
			metrics.BalanceCorrections.WithLabelValues("corrected").Inc()
			r.logger.Warn("Corrected drifted balance",
				zap.String("user_id", d.UserID),
				zap.String("stored", d.Stored.String()),
				zap.String("computed", d.Computed.String()),
			)
		}
		res.Corrected += corrected

		// A short batch is the last one. A batch where nothing could be
		// corrected would be returned again, so stop there as well.
		if len(drift) < r.batchSize || corrected == 0 {
			break
		}
	}

	r.logger.Info("Balance reconciliation completed",
		zap.Int("found", res.Found),
		zap.Int("corrected", res.Corrected),
		zap.Int("skipped", res.Skipped),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// StartPeriodicReconciliation starts a background goroutine that reconciles periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic reconciliation", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
				if _, err := r.ReconcileAll(ctx); err != nil {
					r.logger.Error("Periodic reconciliation failed", zap.Error(err))
				}
				cancel()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation. It is safe to call more than once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
