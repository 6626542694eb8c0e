package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/config"
	"github.com/rmatch-app/rmatch-backend/internal/database"
	"github.com/rmatch-app/rmatch-backend/internal/handlers"
	"github.com/rmatch-app/rmatch-backend/internal/mail"
	"github.com/rmatch-app/rmatch-backend/internal/realtime"
	"github.com/rmatch-app/rmatch-backend/internal/scheduler"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

func main() {
	// .env is optional; real deployments pass the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}
	cfg := config.MustLoad()

	db := database.Connect(cfg.DatabaseDSN)

	tokens := auth.NewManager(cfg.JWTSecret)
	mailer := mail.New(cfg.SMTPAddr, cfg.SMTPFrom)
	publisher := realtime.NewPublisher(cfg.RedisAddr, cfg.RedisPassword)
	defer publisher.Close()

	// Hourly sweep closes postings past their expiration date.
	jobService := services.NewJobService(db)
	sweep := scheduler.New(jobService, "@every 1h")
	if err := sweep.Start(context.Background()); err != nil {
		log.Fatal("Failed to start expiry sweeper:", err)
	}
	defer sweep.Stop()

	r := handlers.NewRouter(handlers.RouterConfig{
		DB:            db,
		Tokens:        tokens,
		Mailer:        mailer,
		Publisher:     publisher,
		ClientOrigin:  cfg.ClientOrigin,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	log.Println("Server starting on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
