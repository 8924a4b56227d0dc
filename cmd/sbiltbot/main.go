package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlyeo/sbiltbot/internal/api"
	"github.com/jlyeo/sbiltbot/internal/bot"
	"github.com/jlyeo/sbiltbot/internal/config"
	"github.com/jlyeo/sbiltbot/internal/db"
	"github.com/jlyeo/sbiltbot/internal/split"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database if configured; the bot runs memory-only without it
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(context.Background()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set, settlement history disabled")
	}

	// The bill-splitting core
	svc := split.NewService(split.NewMemoryStore())

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, svc, database)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, svc, database)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
