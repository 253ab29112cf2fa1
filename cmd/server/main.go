package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"travel-check-service/internal/adapters/cache"
	"travel-check-service/internal/adapters/repositories"
	"travel-check-service/internal/api"
	"travel-check-service/internal/platform/db"
	"travel-check-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	repo := repositories.NewSQLLoginEventRepository(pool)

	// Redis is optional: without it every lookup goes to Postgres.
	var locationCache ports.LocationCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := goredis.NewClient(&goredis.Options{Addr: addr})
		locationCache = cache.NewRedisLocationCache(client, cacheTTL())
		log.Printf("Location cache enabled addr=%s", addr)
	}

	router := api.NewRouter(repo, locationCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func cacheTTL() time.Duration {
	raw := os.Getenv("CACHE_TTL_MINUTES")
	if raw == "" {
		return cache.DefaultObservationTTL
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Printf("ignoring invalid CACHE_TTL_MINUTES=%q", raw)
		return cache.DefaultObservationTTL
	}

	return time.Duration(minutes) * time.Minute
}
