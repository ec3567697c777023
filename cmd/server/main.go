package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	_ "github.com/jackc/pgx/v5/stdlib"

	"smart-routing-service/internal/adapters/cache"
	"smart-routing-service/internal/adapters/repositories"
	"smart-routing-service/internal/api"
	"smart-routing-service/internal/config"
	"smart-routing-service/internal/metrics"
	"smart-routing-service/internal/platform/db"
	"smart-routing-service/internal/ports"
	"smart-routing-service/internal/services"
)

// main is the application composition root.
// It wires the optional Postgres and Redis adapters behind ports and starts
// the HTTP server. Both backends are optional: without them the optimizer
// still serves requests, just without history or caching.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	metrics.Register()

	var repo ports.PlanRepository
	if cfg.Postgres.URL != "" {
		pg, err := db.Open(cfg.Postgres.URL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		// Initialize schema and seed the wilaya reference table on startup.
		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		if err := repositories.SeedWilayas(pg); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewPgPlanRepository(pg)
		log.Println("Plan history enabled (postgres)")
	} else {
		log.Println("DATABASE_URL not set; plan history disabled")
	}

	var planCache ports.PlanCache
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal(err)
		}
		rdb := redis.NewClient(opt)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("verify redis connection: %v", err)
		}
		cancel()

		planCache = cache.NewRedisPlanCache(rdb, cfg.CacheTTL())
		log.Printf("Response cache enabled (redis, ttl=%s)", cfg.CacheTTL())
	} else {
		log.Println("REDIS_URL not set; response cache disabled")
	}

	opts := services.Options{
		SameWilayaBias: cfg.Optimizer.SameWilayaBias,
		AvgSpeedKmh:    cfg.Optimizer.AvgSpeedKmh,
		MinStopMinutes: cfg.Optimizer.MinStopMinutes,
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
	router := api.NewRouter(repo, planCache, opts, limiter)

	log.Printf("Server listening addr=:%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
