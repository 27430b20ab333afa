package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omotenashi/partner-crm/internal/api"
	"github.com/omotenashi/partner-crm/internal/core/ports"
	"github.com/omotenashi/partner-crm/internal/infrastructure/config"
	"github.com/omotenashi/partner-crm/internal/infrastructure/db/memory"
	mongodb "github.com/omotenashi/partner-crm/internal/infrastructure/db/mongo"
	redisdb "github.com/omotenashi/partner-crm/internal/infrastructure/db/redis"
	"github.com/omotenashi/partner-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)
	ctx := context.Background()

	var (
		store ports.Store
		ping  func(ctx context.Context) error
	)
	if cfg.DemoMode() {
		missing := cfg.MissingBackendKeys()
		log.Warn().Strs("missing", missing).
			Msg("backend configuration incomplete, running demo mode on the in-memory store")
		store = memory.NewStore().Repositories(missing)
	} else {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}

		store = mongodb.Repositories(db)
		ping = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	}

	if cfg.CacheEnabled() {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		} else {
			defer rdb.Close()
			store.Plans = redisdb.NewPlanCache(store.Plans, rdb, log)
			store.Countries = redisdb.NewCountryCache(store.Countries, rdb, log)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("catalog cache enabled")
		}
	}

	e := api.NewRouter(store, ping, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Bool("demo", store.Demo).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
