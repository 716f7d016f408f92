package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/cache"
	"github.com/dharmasatrya/flightbooking/internal/catalog"
	"github.com/dharmasatrya/flightbooking/internal/config"
	"github.com/dharmasatrya/flightbooking/internal/handler"
	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
	"github.com/dharmasatrya/flightbooking/internal/search"
	"github.com/dharmasatrya/flightbooking/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	flights, err := catalog.New(catalog.Config{
		SearchLatency:  cfg.Latency.Search,
		DetailsLatency: cfg.Latency.Details,
	})
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.Int("offers", len(flights.All())))

	var redisClient *redis.Client
	if cfg.NeedsRedis() {
		redisClient, err = cache.NewRedisClient(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error("failed to connect to Redis", zap.Error(err))
			return err
		}
		defer redisClient.Close()
	}

	var flightCache cache.Cache
	if cfg.Cache.Enabled {
		flightCache = cache.NewRedisCache(redisClient, cfg.Cache.TTL)
		logger.Info("Redis cache enabled",
			zap.String("host", cfg.Redis.Host+":"+cfg.Redis.Port),
			zap.Duration("ttl", cfg.Cache.TTL),
		)
	} else {
		flightCache = cache.NewNoOpCache()
		logger.Info("cache disabled")
	}

	var sessions session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
	default:
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}
	logger.Info("session store ready", zap.String("store", cfg.Session.Store), zap.Duration("ttl", cfg.Session.TTL))

	sourceLimiter := ratelimit.NewKeyedLimiterWithDefaults()
	searchConfig := search.DefaultConfig()
	searchConfig.Timeout = cfg.SearchTimeout
	searchConfig.RateLimiter = sourceLimiter
	searcher := search.NewSearcher([]search.Source{flights}, flightCache, searchConfig, logger)

	repo, err := booking.NewSeededRepository(flights)
	if err != nil {
		return err
	}
	bookings := booking.NewService(repo, cfg.Latency.Payment, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		ExposeHeaders: []string{handler.HeaderSessionID},
	}))
	e.Use(middleware.RequestID())
	e.Use(handler.RequestLogger(logger))

	handler.Register(e, handler.Deps{
		Searcher: searcher,
		Offers:   flights,
		Bookings: bookings,
		Sessions: sessions,
		Limiter: ratelimit.NewKeyedLimiter(ratelimit.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.Burst,
		}),
		Metrics: recorder,
		Logger:  logger,
	})
	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting flight booking server", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
