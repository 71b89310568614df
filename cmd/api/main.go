package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lostfound/community-api/internal/api"
	"github.com/lostfound/community-api/internal/core/auth"
	"github.com/lostfound/community-api/internal/infrastructure/config"
	mongoinfra "github.com/lostfound/community-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/lostfound/community-api/internal/infrastructure/db/redis"
	"github.com/lostfound/community-api/internal/infrastructure/jobs"
	s3store "github.com/lostfound/community-api/internal/infrastructure/storage/s3"
	"github.com/lostfound/community-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "lostfound-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongoinfra.NewUserRepository(db)
	postRepo := mongoinfra.NewPostRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post index creation failed")
	}

	// --- Redis ---
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Image store ---
	images, err := s3store.NewImageStore(ctx, s3store.Config{
		Endpoint:      cfg.S3.Endpoint,
		Region:        cfg.S3.Region,
		Bucket:        cfg.S3.Bucket,
		AccessKey:     cfg.S3.AccessKey,
		SecretKey:     cfg.S3.SecretKey,
		PublicBaseURL: cfg.S3.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("image store setup failed")
	}

	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.Options{
		DB:           db,
		Redis:        rdb,
		Images:       images,
		Codec:        codec,
		Logger:       log,
		CookieSecure: cfg.Env == "production",
		RateWindow:   cfg.AuthRateWindow,
		RateMax:      cfg.AuthRateMax,
	})

	// --- Background jobs ---
	jobs.NewExpirer(postRepo, cfg.PostExpireAfter, log).Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
