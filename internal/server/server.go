// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
)

// MyServer holds every dependency the route handlers need
type MyServer struct {
	Config *config.Config
	DB     *database.DBinstanceStruct
	// Redis is nil when REDIS_URL is not set.
	Redis     *redis.Client
	JWT       *auth.JWTManager
	Blacklist auth.JwtBlacklistStore
	Jobs      *repository.JobRepository
	Log       *logging.Logger
}

// NewMyServer wires the server dependencies. The token revocation list lives
// in Redis when a client is given, in memory otherwise; the in-memory store
// is cleaned up until ctx is done.
func NewMyServer(ctx context.Context, cfg *config.Config, db *database.DBinstanceStruct, rdb *redis.Client, log *logging.Logger) (*MyServer, error) {
	if err := cfg.RequireSecret(); err != nil {
		return nil, err
	}

	jwtManager, err := auth.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	var blacklist auth.JwtBlacklistStore
	if rdb != nil {
		blacklist = auth.NewRedisBlacklistStore(rdb)
	} else {
		blacklist = auth.NewInMemoryBlacklistStore(ctx)
	}

	return &MyServer{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		JWT:       jwtManager,
		Blacklist: blacklist,
		Jobs:      repository.NewJobRepository(db.DB),
		Log:       log,
	}, nil
}

// NewServer construct new http.Server serving the API
func (s *MyServer) NewServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
