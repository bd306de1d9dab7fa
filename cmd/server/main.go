package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/config"
	"github.com/wiktorkow/cinemaapi/internal/database"
	"github.com/wiktorkow/cinemaapi/internal/handler"
	"github.com/wiktorkow/cinemaapi/internal/middleware"
	"github.com/wiktorkow/cinemaapi/internal/queue"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/router"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := service.NewUserService(
		repository.NewUserRepo(db),
		cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost, cfg.SuperAdminCode,
	)
	movies := service.NewMovieService(repository.NewMovieRepo(db))
	reviews := service.NewReviewService(repository.NewReviewRepo(db))
	repertoires := service.NewRepertoireService(repository.NewRepertoireRepo(db))
	showings := service.NewShowingService(repository.NewShowingRepo(db))
	halls := service.NewHallService(repository.NewHallRepo(db))
	reservations := service.NewReservationService(repository.NewReservationRepo(db))

	e := echo.New()
	e.HideBanner = true

	// Redis is optional: with no client both middlewares pass through.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.Register(e, router.Handlers{
		Users:        handler.NewUserHandler(users),
		Movies:       handler.NewMovieHandler(movies),
		Reviews:      handler.NewReviewHandler(reviews),
		Repertoires:  handler.NewRepertoireHandler(repertoires),
		Showings:     handler.NewShowingHandler(showings),
		Halls:        handler.NewHallHandler(halls),
		Reservations: handler.NewReservationHandler(reservations),
	}, cfg.JWTSecret)

	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
