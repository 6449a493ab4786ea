// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/finpet/finpet-api/pkg/app"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/config"
	dashboardservice "github.com/finpet/finpet-api/pkg/dashboard/service"
	friendservice "github.com/finpet/finpet-api/pkg/friend/service"
	ledgerservice "github.com/finpet/finpet-api/pkg/ledger/service"
	"github.com/finpet/finpet-api/pkg/ledgerstore"
	missionservice "github.com/finpet/finpet-api/pkg/mission/service"
	"github.com/finpet/finpet-api/pkg/missionstore"
	"github.com/finpet/finpet-api/pkg/petstore"
	"github.com/finpet/finpet-api/pkg/pgutil"
	"github.com/finpet/finpet-api/pkg/ratelimit"
	"github.com/finpet/finpet-api/pkg/reconciler"
	userservice "github.com/finpet/finpet-api/pkg/user/service"
	"github.com/finpet/finpet-api/pkg/userstore"
)

const connectTimeout = 30 * time.Second

var _ app.Runner = (*Server)(nil)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services bundles the decorated domain services mounted under /api.
type services struct {
	profile   userservice.Service
	dashboard dashboardservice.Service
	ledger    ledgerservice.Service
	missions  missionservice.Service
	friends   friendservice.Service
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("timezone", cfg.Pet.Timezone),
	)

	loc, err := cfg.Pet.Location()
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	db, err := pgutil.ConnectDB(connectCtx, &cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = ratelimit.ConnectRedis(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	rec := reconciler.New(
		ledgerstore.NewStore(db),
		cfg.Reconciliation.QuietPeriod,
		cfg.Reconciliation.BatchSize,
		logger,
	)
	s.runInitialReconcile(ctx, rec, logger)

	stopReconcile := s.startPeriodicReconcile(rec, logger)
	defer stopReconcile()

	svcs := s.newServices(db, loc, logger)
	router := s.setupRouter(db, rdb, svcs, loc, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before the deferred DB close.
	stopReconcile()

	return err
}

func (s *Server) runInitialReconcile(ctx context.Context, rec *reconciler.Reconciler, logger *zap.Logger) {
	if s.cfg.Reconciliation.InitialTimeout <= 0 {
		return
	}

	logger.Info("Running initial balance reconciliation",
		zap.Duration("timeout", s.cfg.Reconciliation.InitialTimeout),
	)

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.Reconciliation.InitialTimeout)
	defer cancel()

	if _, err := rec.ReconcileAll(startupCtx); err != nil {
		logger.Warn("Initial reconciliation failed (will retry periodically)", zap.Error(err))
	}
}

func (s *Server) startPeriodicReconcile(rec *reconciler.Reconciler, logger *zap.Logger) func() {
	if s.cfg.Reconciliation.Interval <= 0 {
		return func() {}
	}

	logger.Info("Starting periodic reconciliation", zap.Duration("interval", s.cfg.Reconciliation.Interval))
	rec.StartPeriodicReconciliation(s.cfg.Reconciliation.Interval)

	return rec.Stop
}

func (s *Server) newServices(db *bun.DB, loc *time.Location, logger *zap.Logger) *services {
	userStore := userstore.NewStore(db)
	petStore := petstore.NewStore(db)
	ledgerStore := ledgerstore.NewStore(db)
	missionStore := missionstore.NewStore(db)

	missions := missionservice.NewLog(missionservice.NewService(missionStore, loc), logger)
	dashboard := dashboardservice.NewLog(
		dashboardservice.NewService(userStore, petStore, ledgerStore, missions, s.cfg.Pet.Rules(), loc, logger),
		logger,
	)

	return &services{
		profile:   userservice.NewLog(userservice.NewService(userStore, logger), logger),
		dashboard: dashboard,
		ledger: ledgerservice.NewLog(
			ledgerservice.NewService(ledgerStore, userStore, petStore, missions, loc, logger),
			logger,
		),
		missions: missions,
		friends:  friendservice.NewLog(friendservice.NewService(userStore, dashboard, missions, logger), logger),
	}
}

func (s *Server) setupRouter(
	db *bun.DB,
	rdb *redis.Client,
	svcs *services,
	loc *time.Location,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("DB UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	validator := auth.NewJWTValidator(s.cfg.Auth.Secret, s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(validator, logger))
		if s.cfg.RateLimit.Enabled && rdb != nil {
			logger.Info("Rate limiting enabled",
				zap.Int("limit", s.cfg.RateLimit.Limit),
				zap.Duration("window", s.cfg.RateLimit.Window),
			)
			r.Use(ratelimit.Middleware(ratelimit.NewRedisCounter(rdb), s.cfg.RateLimit.Limit, s.cfg.RateLimit.Window, logger))
		}

		userservice.RegisterRoutes(r, svcs.profile, logger)
		dashboardservice.RegisterRoutes(r, svcs.dashboard, logger)
		ledgerservice.RegisterRoutes(r, svcs.ledger, loc, logger)
		missionservice.RegisterRoutes(r, svcs.missions, logger)
		friendservice.RegisterRoutes(r, svcs.friends, logger)
	})

	return r
}
