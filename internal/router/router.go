package router

import (
	"log"
	"net/http"

	"github.com/aeiluminate/backend/internal/handlers"
	"github.com/aeiluminate/backend/internal/mailer"
	"github.com/aeiluminate/backend/internal/middleware"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/aeiluminate/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. CORS must allow
// credentials so the browser sends the session cookie back.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Debug = cfg.Env == "development"

	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, uploader storage.Uploader, mail mailer.Mailer) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Alumni{},
		&models.AcademicProgram{},
		&models.Application{},
		&models.Post{},
		&models.Media{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Album{},
		&models.Event{},
		&models.InterestedUser{},
		&models.Conversation{},
		&models.Message{},
		&models.JobListing{},
		&models.PasswordReset{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	albumRepo := repositories.NewPostgresAlbumRepository(pgdb)
	eventRepo := repositories.NewPostgresEventRepository(pgdb)
	conversationRepo := repositories.NewPostgresConversationRepository(pgdb)
	jobRepo := repositories.NewPostgresJobListingRepository(pgdb)
	resetRepo := repositories.NewPostgresPasswordResetRepository(pgdb)
	programRepo := repositories.NewPostgresProgramRepository(pgdb)

	// --- Unprotected routes ---
	public := e.Group("/api")
	handlers.RegisterHealthRoutes(public)

	authHandler := handlers.NewAuthHandler(userRepo, uploader, mail, cfg.TokenSecret)
	authHandler.RegisterAuthRoutes(public)
	log.Println("Auth routes configured.")

	recoveryHandler := handlers.NewRecoveryHandler(resetRepo, userRepo, mail)
	recoveryHandler.RegisterRecoveryRoutes(public)
	log.Println("Password recovery routes configured.")

	programHandler := handlers.NewProgramHandler(programRepo)
	programHandler.RegisterProgramRoutes(public)
	log.Println("Program routes configured.")

	// --- Protected routes (require the session cookie) ---
	api := e.Group("/api")
	api.Use(middleware.CookieAuthMiddleware(cfg.TokenSecret))
	log.Println("Cookie authentication middleware applied to /api group.")

	authHandler.RegisterApplicationRoutes(api)
	log.Println("Application review routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, followRepo, uploader)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, uploader)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	albumHandler := handlers.NewAlbumHandler(albumRepo, uploader)
	albumHandler.RegisterAlbumRoutes(api)
	log.Println("Album routes configured.")

	eventHandler := handlers.NewEventHandler(eventRepo, uploader)
	eventHandler.RegisterEventRoutes(api)
	log.Println("Event routes configured.")

	conversationHandler := handlers.NewConversationHandler(conversationRepo, userRepo)
	conversationHandler.RegisterConversationRoutes(api)
	log.Println("Conversation routes configured.")

	jobHandler := handlers.NewJobListingHandler(jobRepo)
	jobHandler.RegisterJobListingRoutes(api)
	log.Println("Job listing routes configured.")

	log.Println("All routes configured.")
}
