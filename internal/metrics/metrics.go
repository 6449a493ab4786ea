package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DashboardDuration tracks how long building a dashboard payload takes
	DashboardDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finpet_dashboard_duration_seconds",
			Help:    "Dashboard payload build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"variant"},
	)

	// DailyTransitions counts daily pet transitions by kind
	DailyTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_daily_transitions_total",
			Help: "Total number of daily pet transitions applied",
		},
		[]string{"kind"},
	)

	// TransactionsCreated counts recorded transactions by type
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_transactions_created_total",
			Help: "Total number of transactions recorded",
		},
		[]string{"type"},
	)

	// TransactionAmount tracks the amounts recorded
	TransactionAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finpet_transaction_amount",
			Help:    "Amount of recorded transactions",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 500, 1000, 10000},
		},
		[]string{"type"},
	)

	// SideEffectFailures counts best-effort steps that failed after a transaction was stored
	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_side_effect_failures_total",
			Help: "Total number of failed best-effort side effects",
		},
		[]string{"step"},
	)

	// MissionsCompleted counts mission completions by code
	MissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_missions_completed_total",
			Help: "Total number of missions completed",
		},
		[]string{"code"},
	)

	// MissionsClaimed counts paid out mission rewards
	MissionsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finpet_missions_claimed_total",
			Help: "Total number of mission rewards claimed",
		},
	)

	// RateLimited counts rejected requests
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finpet_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// BalanceCorrections counts balances rewritten by the reconciler
	BalanceCorrections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_balance_corrections_total",
			Help: "Total number of user balances corrected from the transaction ledger",
		},
		[]string{"result"},
	)

	// ReconcileDuration tracks reconciliation run time
	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finpet_reconcile_duration_seconds",
			Help:    "Duration of balance reconciliation runs",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ErrorsTotal counts errors by component
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finpet_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
