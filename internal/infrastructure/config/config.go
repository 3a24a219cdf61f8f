package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const envDevelopment = "development"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=production"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET, required"`
	TTL          time.Duration `env:"SESSION_TTL,    default=24h"`
	CookieName   string        `env:"SESSION_COOKIE, default=SYSSESSION"`
	CookieSecure bool          `env:"COOKIE_SECURE,  default=false"`
	// UserListRoles gates GET /sys/user. Empty lets any session through.
	UserListRoles []string `env:"USER_LIST_ROLES"`
}

type DatabaseConfig struct {
	Driver       string `env:"DB_DRIVER,         default=sqlite"`
	URL          string `env:"DB_URL,            default=file:sysadmin.db?_pragma=foreign_keys(1)"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=3"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, envDevelopment)
}

// Load reads a .env file from the working directory when one exists, then
// processes the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadDatabase reads only the database settings. Commands that never serve
// HTTP use it so they do not require session secrets.
func LoadDatabase(ctx context.Context) (*DatabaseConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg DatabaseConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load database configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFrom processes configuration from the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("load configuration: SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.Database.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("load configuration: DB_MAX_OPEN_CONNS must be positive, got %d", cfg.Database.MaxOpenConns)
	}
	return &cfg, nil
}
