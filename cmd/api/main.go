// Command api serves the DevJobHub REST API.
//
// @title DevJobHub API
// @version 1.0
// @description Job board backend: imported job listings, technologies and the job seeker's activity.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatal("invalid configuration", "err", err)
	}

	log := logging.New(cfg.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDBInstance(database.FromConfig(cfg.Database), log)
	if err != nil {
		log.Fatal("database failed to initialize", "err", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		if rdb, err = database.NewRedisClient(ctx, cfg.RedisURL); err != nil {
			log.Fatal("redis failed to initialize", "err", err)
		}
		defer func() {
			_ = rdb.Close()
		}()
	}

	s, err := server.NewMyServer(ctx, cfg, db, rdb, log)
	if err != nil {
		log.Fatal("server failed to initialize", "err", err)
	}
	srv := s.NewServer()

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
