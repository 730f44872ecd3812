package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jotarsh7/Assignment-3/internal/config"
	"github.com/jotarsh7/Assignment-3/internal/handler"
	"github.com/jotarsh7/Assignment-3/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth and
// are rate-limited per IP; protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rdb *redis.Client, rl config.RateLimitConfig) {
	g := e.Group("/v1/auth")
	g.Use(middleware.NewTokenBucket(rl, rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts a refresh token in the body and needs no JWT.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	// Logout without a body revokes all sessions of the JWT's user.
	auth.POST("/logout", a.Logout)
}

// RegisterCatalog registers the owner-scoped movie and favorites endpoints.
// All of them require a valid access token; the two list endpoints are
// cached per owner through the Redis middleware.
func RegisterCatalog(e *echo.Echo, m *handler.MovieHandler, f *handler.FavoriteHandler,
	jwtSecret string, rdb *redis.Client, cc config.CacheConfig) {

	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	cache := middleware.NewRedisCache(cc, rdb)
	inval := middleware.InvalidateCache(cc, rdb)

	g.GET("/movies", m.List, cache)
	g.POST("/movies", m.Create, inval)
	g.PUT("/movies/:id", m.Update, inval)
	g.DELETE("/movies/:id", m.Delete, inval)

	g.GET("/favorites", f.List, cache)
	g.POST("/favorites", f.Add, inval)
	g.PUT("/favorites/:id", f.Update, inval)
	g.DELETE("/favorites/:id", f.Delete, inval)
}
