package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"research-nest.backend/internal/config"
	"research-nest.backend/internal/infrastructure/repositories"
	"research-nest.backend/internal/interfaces/http/handlers"
	"research-nest.backend/internal/interfaces/http/middleware"
	"research-nest.backend/internal/usecases"
	"research-nest.backend/pkg/logger"
	"research-nest.backend/pkg/redis"
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Logger
	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis (session storage)
	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize Session Store
	sessionStore, err := redis.NewSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	r := buildRouter(cfg, db, sessionStore)

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Research-Nest Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildRouter assembles middleware, repositories, and routes onto one engine
func buildRouter(cfg *config.Config, db *gorm.DB, sessionStore *redis.SessionStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(c.Request.Context(), "Panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerRootRoutes(r)

	userRepo := repositories.NewUserRepository(db)
	authUsecase := usecases.NewAuthUsecase(userRepo)
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.Session.TTL, cfg.Server.IsProduction())

	registerAPIRoutes(r, routeDeps{
		authHandler:   authHandler,
		teamMembers:   repositories.NewTeamMemberRepository(db),
		researchAreas: repositories.NewResearchAreaRepository(db),
		publications:  repositories.NewPublicationRepository(db),
		projects:      repositories.NewProjectRepository(db),
		activities:    repositories.NewActivityRepository(db),
		gallery:       repositories.NewGalleryImageRepository(db),
		requireAuth:   middleware.SessionAuth(sessionStore),
	})

	return r
}
