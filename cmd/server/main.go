package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matchmaker/internal/matching/events"
	"matchmaker/internal/matching/handler"
	"matchmaker/internal/matching/metrics"
	"matchmaker/internal/matching/service"
	"matchmaker/internal/matching/store/idealtype"
	"matchmaker/internal/matching/store/profile"
	"matchmaker/internal/matching/tracer"
	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/database"
	"matchmaker/internal/platform/health"
	"matchmaker/internal/platform/kafka/producer"
	"matchmaker/internal/platform/logger"
	"matchmaker/internal/platform/redis"
	"matchmaker/migrations"
	"matchmaker/pkg/platform/circuit"
	"matchmaker/pkg/platform/middleware/request"
	"matchmaker/pkg/platform/middleware/requesttime"
	"matchmaker/pkg/platform/validation"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Matching logic lives in internal/matching.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	log.Info("initializing matchmaker",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"postgres", cfg.DatabaseURL != "",
		"redis", cfg.Redis.URL != "",
		"kafka", cfg.Kafka.Brokers != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthHandler := health.New(cfg.Environment)
	m := metrics.New(prometheus.DefaultRegisterer)

	profiles, idealTypes, closeStores, err := buildStores(ctx, cfg, log, m, healthHandler)
	if err != nil {
		return err
	}
	defer closeStores()

	publisher, closeProducer, err := buildPublisher(cfg, log, healthHandler)
	if err != nil {
		return err
	}
	defer closeProducer()

	svc := service.New(profiles, idealTypes,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTracer(tracer.NewOTel()),
		service.WithEventPublisher(publisher),
		service.WithMaxDealBreakers(cfg.Matching.MaxDealBreakers),
		service.WithCandidateLimit(cfg.Matching.CandidateLimit),
	)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Recovery(log))
	r.Use(request.Logger(log))
	r.Use(request.LatencyMiddleware(request.NewMetrics(prometheus.DefaultRegisterer)))
	r.Use(request.BodyLimit(validation.MaxBodySize))
	r.Use(request.ContentTypeJSON)

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildStores picks Postgres when DATABASE_URL is set and in-memory stores
// otherwise, then puts the Redis cache in front of the ideal type store when
// REDIS_URL is set.
func buildStores(ctx context.Context, cfg config.Server, log *slog.Logger, m *metrics.Metrics, hh *health.Handler) (service.ProfileStore, service.IdealTypeStore, func(), error) {
	var (
		profiles   service.ProfileStore
		idealTypes idealtype.Store
		closers    []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(ctx, dbCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if pool != nil {
		closers = append(closers, func() {
			if err := pool.Close(); err != nil {
				log.Warn("failed to close database pool", "error", err)
			}
		})
		if cfg.MigrateOnStart {
			if err := database.Migrate(ctx, pool.DB(), migrations.FS); err != nil {
				closeAll()
				return nil, nil, nil, err
			}
			log.Info("database migrations applied")
		}
		if err := pool.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			log.Warn("failed to register database pool metrics", "error", err)
		}
		hh.RegisterCheck("postgres", pool.Health)
		profiles = profile.NewPostgres(pool.DB())
		idealTypes = idealtype.NewPostgres(pool.DB())
	} else {
		log.Warn("DATABASE_URL not set; profiles and ideal types are kept in memory")
		profiles = profile.NewInMemory()
		idealTypes = idealtype.NewInMemory()
	}

	rc, err := redis.New(cfg.Redis)
	if err != nil {
		closeAll()
		return nil, nil, nil, err
	}
	if rc != nil {
		closers = append(closers, func() {
			if err := rc.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		})
		hh.RegisterCheck("redis", rc.Health)
		go rc.ReportPoolStats(ctx, 15*time.Second)
		idealTypes = idealtype.NewRedisCache(idealTypes, rc.Client, cfg.Matching.IdealTypeCacheTTL,
			idealtype.WithCacheMetrics(m),
			idealtype.WithCacheLogger(log),
			idealtype.WithBreaker(circuit.New("ideal-type-cache")),
		)
	}

	return profiles, idealTypes, closeAll, nil
}

func buildPublisher(cfg config.Server, log *slog.Logger, hh *health.Handler) (*events.Publisher, func(), error) {
	if cfg.Kafka.Brokers == "" {
		log.Warn("KAFKA_BROKERS not set; ideal type events are discarded")
		return events.NewPublisher(producer.NewNoopProducer()), func() {}, nil
	}

	p, err := producer.New(producer.Config{
		Brokers:         cfg.Kafka.Brokers,
		Acks:            cfg.Kafka.Acks,
		Retries:         cfg.Kafka.Retries,
		DeliveryTimeout: cfg.Kafka.DeliveryTimeout,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	hh.RegisterCheck("kafka", p.Health)
	closeProducer := func() {
		if err := p.Close(); err != nil {
			log.Warn("failed to close kafka producer", "error", err)
		}
	}
	return events.NewPublisher(p), closeProducer, nil
}
