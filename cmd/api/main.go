package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	"github.com/BruksfildServices01/vet-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/vet-clinic/internal/db"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/logging"
	"github.com/BruksfildServices01/vet-clinic/internal/photos"
	"github.com/BruksfildServices01/vet-clinic/internal/routes"
	"github.com/BruksfildServices01/vet-clinic/internal/storage"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.JWTSecret == "changeme" {
		log.Warn("JWT_SECRET is not set, using the development default")
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	// ------------------------------
	// Redis (optional)
	// ------------------------------
	var (
		revoker   auth.Revoker     = auth.NewMemoryRevoker()
		publisher events.Publisher = events.NewLogPublisher(log)
	)

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis not reachable at startup")
		}
		cancel()

		revoker = auth.NewRedisRevoker(rdb)
		publisher = events.NewRedisPublisher(rdb, cfg.EventsChannel)
	}

	dispatcher := events.NewDispatcher(publisher, log, 256)
	defer dispatcher.Close()

	// ------------------------------
	// Photo storage (optional)
	// ------------------------------
	var photoStore photos.Store
	if cfg.S3.Enabled() {
		photoStore = storage.NewS3Store(cfg.S3)
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.NewRouter(routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Issuer:  auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Revoker: revoker,
		Events:  dispatcher,
		Photos:  photoStore,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
