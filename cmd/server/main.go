package main

import (
	"context"
	"log"

	"github.com/aeiluminate/backend/internal/mailer"
	"github.com/aeiluminate/backend/internal/router"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/aeiluminate/backend/pkg/config"
	"github.com/aeiluminate/backend/pkg/firebase"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize database connections (loads .env first)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Load configuration
	cfg := config.Load()

	// Initialize Firebase and the storage bucket
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	uploader, err := storage.NewBucketUploader(firebaseApp.StorageClient, cfg.StorageEndpoint, cfg.StorageBucket, cfg.StorageProjectID)
	if err != nil {
		log.Fatalf("Failed to initialize storage uploader: %v", err)
	}

	mail, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPassword, cfg.MailFrom)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, uploader, mail)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
