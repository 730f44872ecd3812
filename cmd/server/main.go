package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jotarsh7/Assignment-3/internal/config"
	"github.com/jotarsh7/Assignment-3/internal/database"
	"github.com/jotarsh7/Assignment-3/internal/gateway"
	"github.com/jotarsh7/Assignment-3/internal/handler"
	"github.com/jotarsh7/Assignment-3/internal/middleware"
	"github.com/jotarsh7/Assignment-3/internal/queue"
	"github.com/jotarsh7/Assignment-3/internal/repository"
	"github.com/jotarsh7/Assignment-3/internal/router"
	queue_publisher "github.com/jotarsh7/Assignment-3/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("db schema: %v", err)
	}
	cancel()

	// Redis is optional: nil disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	catalog := repository.NewCatalogRepo(db)
	favorites := repository.NewFavoritesRepo(db)

	gw := gateway.New(catalog, favorites, middleware.ContextIdentity{})

	authH := handler.NewAuthHandler(cfg, users, tokens)
	movieH := handler.NewMovieHandler(gw)
	movieH.Publish = queue_publisher.PublishCatalogChanged
	favH := handler.NewFavoriteHandler(gw)
	favH.Publish = queue_publisher.PublishCatalogChanged

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, rdb, config.LoadRateLimitConfig())
	router.RegisterCatalog(e, movieH, favH, cfg.JWTSecret, rdb, config.LoadCacheConfig())

	// Background audit consumer; reconnects on its own.
	go func() {
		if err := queue.StartCatalogConsumer(); err != nil {
			log.Printf("catalog-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
