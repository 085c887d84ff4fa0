package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/jobs"
	"github.com/pauljaws/StackBot/internal/metrics"
	"github.com/pauljaws/StackBot/internal/server"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	replies, err := config.LoadReplies()
	if err != nil {
		log.Fatalf("Failed to load replies config: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.SeedDevToolTypes {
		if err := database.SeedDevToolTypes(ctx); err != nil {
			log.Fatalf("Failed to seed tool types: %v", err)
		}
		log.Println("Seeded development tool types")
	}

	// Initialize metrics
	metrics.Init(database)

	// Initialize server and routes
	srv := server.New(cfg)
	rankingClient := srv.RegisterRoutes(database, replies)

	// Background upstream reachability probe
	checkerCtx, stopChecker := context.WithCancel(ctx)
	checker := jobs.NewUpstreamChecker(rankingClient, 5*time.Minute)
	go checker.Start(checkerCtx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopChecker()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
