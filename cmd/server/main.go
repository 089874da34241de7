package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files into the environment
	"github.com/labstack/echo/v4"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/config"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/database"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/handler"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/httperr"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/middleware"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/queue"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/reaper"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/repository"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/router"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Provision the bootstrap admin account before accepting traffic.
	if err := database.SeedAdmin(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("admin seeding failed: %v", err)
	}

	// Redis backs the login rate limiter and the performance-report cache;
	// both degrade to pass-through when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	codes := repository.NewStaffCodeRepo(db)
	staff := repository.NewStaffRepo(db)
	perf := repository.NewPerformanceRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httperr.NewHTTPErrorHandler(cfg.Env)
	e.Use(middleware.PerformanceTracker(perf))

	authH := handler.NewAuthHandler(cfg, users)
	staffH := handler.NewStaffHandler(cfg, codes, staff, service.NewStaffEventPublisher())
	adminH := handler.NewAdminHandler(codes, perf)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterStaff(e, staffH, cfg.JWTAccessSecret)
	router.RegisterAdmin(e, adminH, rdb, cfg.JWTAccessSecret)

	// Background workers: the code reaper and the staff.registered consumer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reaper.New(codes, cfg.ReaperInterval, cfg.ReaperBatch).Run(ctx)
	go func() {
		if err := queue.StartStaffConsumer(); err != nil {
			log.Printf("staff consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
