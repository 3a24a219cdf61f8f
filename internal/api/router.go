package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/sysadmin/sysadmin-api/docs"
	"github.com/sysadmin/sysadmin-api/internal/api/codec"
	"github.com/sysadmin/sysadmin-api/internal/api/handler"
	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/api/middleware"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
	"github.com/sysadmin/sysadmin-api/internal/core/service"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/config"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/db/sqlstore"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/http/handlers"
)

// Deps are the process-wide collaborators the router wires together.
type Deps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	DB       *gorm.DB
	Sessions ports.SessionStore
	// RedisCheck backs the readiness probe.
	RedisCheck handlers.Check
	// Registry defaults to metrics.NewRegistry().
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = codec.Serializer{}
	e.Validator = handler.NewValidator()

	reg := d.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	m := metrics.New(reg)
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger, m, d.Config.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "sysadmin",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Dependencies ---
	userRepo := sqlstore.NewUserRepository(d.DB)
	resourceRepo := sqlstore.NewResourceRepository(d.DB)

	userService := service.NewUserService(userRepo, d.Logger)
	resourceService := service.NewResourceService(resourceRepo, d.Logger)
	authService := service.NewAuthService(userRepo, d.Sessions, d.Config.Session.Secret, d.Config.Session.TTL, d.Logger)

	userHandler := handler.NewUserHandler(userService, m)
	resourceHandler := handler.NewResourceHandler(resourceService, m)
	authHandler := handler.NewAuthHandler(authService, handler.CookieConfig{
		Name:   d.Config.Session.CookieName,
		Secure: d.Config.Session.CookieSecure,
		TTL:    d.Config.Session.TTL,
	}, m)

	// --- Auth routes (public) ---
	e.GET(middleware.LoginPath, authHandler.LoginPage)
	e.POST(middleware.LoginPath, authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- /sys routes (session required) ---
	// The session check is attached per route: group-level middleware would
	// register a catch-all that turns method mismatches into 404.
	session := middleware.Session(authService, middleware.SessionConfig{
		CookieName: d.Config.Session.CookieName,
		Secure:     d.Config.Session.CookieSecure,
	})

	// Id-less GET and DELETE are routed to the handlers so they fail as 400.
	users := e.Group("/sys/user")
	users.GET("", userHandler.List, session, middleware.WithRoles(d.Config.Session.UserListRoles...))
	users.GET("/", userHandler.Get, session)
	users.GET("/:id", userHandler.Get, session)
	users.POST("", userHandler.Create, session)
	users.PUT("", userHandler.Update, session)
	users.DELETE("", userHandler.Delete, session)
	users.DELETE("/", userHandler.Delete, session)
	users.DELETE("/:id", userHandler.Delete, session)

	resources := e.Group("/sys/resource")
	resources.GET("", resourceHandler.List, session)
	resources.GET("/", resourceHandler.Get, session)
	resources.GET("/:id", resourceHandler.Get, session)
	resources.POST("", resourceHandler.Create, session)
	resources.PUT("", resourceHandler.Update, session)
	resources.DELETE("", resourceHandler.Delete, session)
	resources.DELETE("/", resourceHandler.Delete, session)
	resources.DELETE("/:id", resourceHandler.Delete, session)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(handlers.DatabaseCheck(d.DB), d.RedisCheck)

	e.GET("/health/liveness", healthHandler.Liveness)
	e.GET("/health/readiness", healthDepsHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
