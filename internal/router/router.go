package router // package router builds the Echo instance and registers the HTTP routes

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/example-api/internal/config"
	"github.com/iliyamo/example-api/internal/handler"
	"github.com/iliyamo/example-api/internal/logger"
	"github.com/iliyamo/example-api/internal/metrics"
	"github.com/iliyamo/example-api/internal/middleware"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

// Deps are the optional collaborators of the HTTP stack.  A nil Redis client
// disables the response cache and nil Metrics disables instrumentation.
type Deps struct {
	Logger  *logger.Logger
	Redis   *redis.Client
	Metrics *metrics.Metrics
}

// New constructs the Echo instance with its middleware stack and routes.
// Everything is registered before the instance is returned, so it is safe to
// serve concurrently afterwards.
//
// Metrics wraps Recover so recovered panics are counted with their 500.
// CORS is installed right after Recover, so cross-origin headers are on
// every response, including 404/405 and recovered panics.
func New(cfg config.Config, deps Deps) *echo.Echo {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = compactJSON{}

	if deps.Metrics != nil {
		e.Use(middleware.Metrics(deps.Metrics))
		e.GET(cfg.Metrics.Path, echo.WrapHandler(deps.Metrics.Handler()))
	}
	e.Use(echomw.Recover())
	e.Use(middleware.CORS(cfg.CORSOrigins))
	e.Use(logger.RequestLogger(deps.Logger))

	RegisterRoutes(e, middleware.NewRedisCache(cfg.Cache, deps.Redis))
	return e
}

// RegisterRoutes registers the public routes.  The given middleware (e.g. the
// response cache) is applied to the versioned API group only.
func RegisterRoutes(e *echo.Echo, api ...echo.MiddlewareFunc) {
	// Plain-text health check kept for callers that expect a text body.
	e.GET("/health", handler.Health)

	v1 := e.Group(APIPrefix, api...)
	v1.GET("/health", handler.APIHealth)
	v1.GET("/hello", handler.Hello)
}
