package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbelda/fridgechef-be/internal/api"
	"github.com/mbelda/fridgechef-be/internal/auth"
	"github.com/mbelda/fridgechef-be/internal/config"
	"github.com/mbelda/fridgechef-be/internal/database"
	"github.com/mbelda/fridgechef-be/internal/generation"
	"github.com/mbelda/fridgechef-be/internal/logger"
	"github.com/mbelda/fridgechef-be/internal/monitoring"
	"github.com/mbelda/fridgechef-be/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init()

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up token signing
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up the generation API client
	generator := generation.NewCohereClient(cfg.CohereAPIURL, cfg.CohereAPIKey, cfg.GenerationTimeout)

	// Set up services
	userService := services.NewUserService(db)
	recipeService := services.NewRecipeService(db)
	eventService := services.NewEventService(db)

	// Set up and run the background event sweeper
	sweeper := monitoring.NewEventSweeper(eventService, cfg.EventRetention)
	go sweeper.Run()

	// Set up router
	router := api.NewRouter(db, tokens, userService, recipeService, eventService, generator, cfg.AllowedOrigins)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
