package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sysadmin/sysadmin-api/internal/infrastructure/db/sqlstore"
)

const (
	statusUp   = "OK"
	statusDown = "DOWN"

	readinessTimeout = 3 * time.Second
)

// HealthHandler handles GET /health/liveness.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": statusUp,
	})
}

// Check probes one dependency.
type Check func(ctx context.Context) error

// HealthDependenciesHandler handles GET /health/readiness.
// Checks the database and Redis before declaring the service ready.
type HealthDependenciesHandler struct {
	db    Check
	redis Check
}

func NewHealthDependenciesHandler(db, redis Check) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, redis: redis}
}

// DatabaseCheck pings the pool behind db.
func DatabaseCheck(db *gorm.DB) Check {
	return func(ctx context.Context) error {
		return sqlstore.Ping(ctx, db)
	}
}

func RedisCheck(client *redis.Client) Check {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

type readinessResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Redis  string `json:"redis"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{
		Status: statusUp,
		DB:     probe(ctx, h.db),
		Redis:  probe(ctx, h.redis),
	}

	httpStatus := http.StatusOK
	if resp.DB != statusUp || resp.Redis != statusUp {
		resp.Status = statusDown
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, resp)
}

func probe(ctx context.Context, check Check) string {
	if check == nil {
		return statusDown
	}
	if err := check(ctx); err != nil {
		return statusDown
	}
	return statusUp
}
