package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"property-estimator/config"
	"property-estimator/estimator"
	httpLayer "property-estimator/http"
	"property-estimator/logger"
	"property-estimator/repository"
	"property-estimator/service"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		bootLog := logger.New(os.Stderr, "error")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(os.Stdout, cfg.LogLevel)

	est, err := estimator.New(cfg.Estimator.Estimator())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid estimator defaults")
	}

	cache, closeCache := newCache(cfg, log)
	defer closeCache()

	estimateService := service.NewEstimateService(est, cache, log)
	termComparisonService := service.NewTermComparisonService(estimateService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(estimateService, termComparisonService, rateLimiter, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("estimator API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("error starting server")
		return
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}

// newCache prefers Redis when configured and reachable, and falls back to the
// in-process cache otherwise.
func newCache(cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return newMemoryCache(cfg)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-memory cache")
		_ = redisCache.Close()
		return newMemoryCache(cfg)
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

func newMemoryCache(cfg *config.Config) (repository.CacheRepository, func()) {
	cache := repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	return cache, cache.Stop
}
