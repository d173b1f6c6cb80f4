package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/XavierBriggs/Midas/adapters/theoddsapi"
	"github.com/XavierBriggs/Midas/internal/cache"
	"github.com/XavierBriggs/Midas/internal/registry"
	"github.com/XavierBriggs/Midas/internal/scanner"
	"github.com/XavierBriggs/Midas/internal/server"
	"github.com/XavierBriggs/Midas/sports/soccer"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	// Load .env if present, then configuration from environment
	_ = godotenv.Load()
	config := loadConfig()

	// Initialize Redis connection for the scan cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.RedisPassword,
	})
	defer redisClient.Close()

	// Test Redis connection
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Connected to Redis")

	// Initialize The Odds API adapter
	adapter := theoddsapi.NewClient()

	fmt.Println("✓ Initialized The Odds API adapter")

	// Initialize sport registry and register active sports
	sportRegistry := registry.NewSportRegistry()

	soccerModule, err := soccer.NewModule()
	if err != nil {
		fmt.Printf("failed to build soccer module: %v\n", err)
		os.Exit(1)
	}
	if err := sportRegistry.Register(soccerModule); err != nil {
		fmt.Printf("failed to register soccer module: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Registered %d sport(s)\n", sportRegistry.Count())

	// One scanner per registered sport, each sharing the redis memo store
	scanners := make(map[string]*scanner.Scanner)
	for _, key := range sportRegistry.Keys() {
		sport, _ := sportRegistry.Get(key)
		store := cache.NewStore(redisClient, sport.GetCacheTTL())
		scanners[key] = scanner.NewScanner(adapter, store, sport)

		fmt.Printf("  [%s]\n", sport.GetDisplayName())
		fmt.Printf("    Regions: %v\n", sport.GetRegions())
		fmt.Printf("    Bookmakers: %d allow-listed\n", len(sport.GetBookmakers()))
		fmt.Printf("    Cache TTL: %v\n", sport.GetCacheTTL())
	}

	// Setup HTTP server
	handler := server.NewHandler(sportRegistry, scanners, config.OddsAPIKey)
	router := server.NewRouter(handler, config.CORSOrigins)

	srv := &http.Server{
		Addr:         config.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Midas listening on %s\n", config.Port)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET /health")
		fmt.Println("    GET /api/v1/{sportKey}/opportunities")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("✗ Server error: %v\n", err)
		os.Exit(1)

	case <-shutdown:
		fmt.Println("\n✓ Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("✗ Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("✗ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Midas stopped")
}

// Config holds Midas configuration
type Config struct {
	Port          string
	RedisURL      string
	RedisPassword string
	OddsAPIKey    string
	CORSOrigins   []string
}

// loadConfig loads configuration from environment variables. ODDS_API_KEY may
// be empty: dashboard clients can supply a per-request key header instead.
func loadConfig() Config {
	return Config{
		Port:          getEnv("MIDAS_PORT", ":8080"),
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		OddsAPIKey:    os.Getenv("ODDS_API_KEY"),
		CORSOrigins:   strings.Split(getEnv("MIDAS_CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
