package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hamstery/hamstery-api/internal/api"
	"github.com/hamstery/hamstery-api/internal/infrastructure/config"
	mongodb "github.com/hamstery/hamstery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hamstery/hamstery-api/internal/infrastructure/db/redis"
	"github.com/hamstery/hamstery-api/internal/infrastructure/fixtures"
	"github.com/hamstery/hamstery-api/internal/pkg/namegen"
	"github.com/hamstery/hamstery-api/pkg/logger"
)

// @title        Hamstery API
// @version      1.0
// @description  Virtual hamster economy service.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	hamsterRepo := mongodb.NewHamsterRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := hamsterRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("hamster indexes failed")
	}

	if cfg.SeedDemoData {
		if err := fixtures.Load(ctx, userRepo, hamsterRepo, namegen.New(), log); err != nil {
			log.Fatal().Err(err).Msg("fixture load failed")
		}
	}

	e := api.NewRouter(api.Deps{
		Client:    client,
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("hamstery api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
