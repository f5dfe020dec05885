package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/example-api/internal/config"
	"github.com/iliyamo/example-api/internal/logger"
	"github.com/iliyamo/example-api/internal/metrics"
	"github.com/iliyamo/example-api/internal/model"
	"github.com/iliyamo/example-api/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(model.ServiceName, false).Fatal().Err(err).Msg("load config")
	}
	log := logger.New(model.ServiceName, cfg.IsDev())
	log.Debug().Strs("cors_origins", cfg.CORSOrigins).Int("port", cfg.Port).Msg("config loaded")

	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb, err = config.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, response cache disabled")
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.Labels{"service": model.ServiceName})
	}

	e := router.New(cfg, router.Deps{Logger: log, Redis: rdb, Metrics: m})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}
}
