package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"jotbox/config"
	"jotbox/handler"
	"jotbox/middleware"
	"jotbox/repository"
	"jotbox/services"
	"jotbox/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func connectMongo(cfg config.DatabaseConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(cfg.DatabaseName), nil
}

func setupRouter(cfg *config.Config, auth *handler.AuthHandler, notes *handler.NotesHandler, tokens *services.TokenService) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	health := handler.NewHealthHandler()
	router.GET("/api/health", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/auth/me", auth.Me)

		notesGroup := protected.Group("/notes")
		{
			notesGroup.GET("", notes.List)
			notesGroup.POST("", notes.Create)
			notesGroup.GET("/:id", notes.Get)
			notesGroup.PUT("/:id", notes.Update)
			notesGroup.DELETE("/:id", notes.Delete)
		}
	}

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := connectMongo(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}

	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	notesRepo := repository.NewNotesRepo(db)

	userService := usecase.NewUserService(userRepo)
	notesService := usecase.NewNotesService(notesRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	authHandler := handler.NewAuthHandler(userService, tokenService)
	notesHandler := handler.NewNotesHandler(notesService)

	router := setupRouter(cfg, authHandler, notesHandler, tokenService)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
