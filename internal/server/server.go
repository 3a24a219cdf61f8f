package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sysadmin/sysadmin-api/internal/api"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/config"
	sessionredis "github.com/sysadmin/sysadmin-api/internal/infrastructure/db/redis"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/db/sqlstore"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/http/handlers"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server owns the HTTP server and the shared database and Redis handles.
type Server struct {
	echo  *echo.Echo
	db    *gorm.DB
	redis *goredis.Client
	addr  string
	log   zerolog.Logger
}

// New opens the database, migrates the schema, connects to Redis and builds
// the router.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:       cfg.Database.Driver,
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(db); err != nil {
		_ = sqlstore.Close(db)
		return nil, err
	}

	rdb, err := sessionredis.Connect(ctx, sessionredis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		_ = sqlstore.Close(db)
		return nil, err
	}

	e := api.NewRouter(api.Deps{
		Config:     cfg,
		Logger:     log,
		DB:         db,
		Sessions:   sessionredis.NewSessionStore(rdb),
		RedisCheck: handlers.RedisCheck(rdb),
	})
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = idleTimeout

	return &Server{
		echo:  e,
		db:    db,
		redis: rdb,
		addr:  net.JoinHostPort("", cfg.Port),
		log:   log,
	}, nil
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.addr).Msg("http server listening")
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then closes Redis and the database.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := s.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}
	if err := sqlstore.Close(s.db); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
