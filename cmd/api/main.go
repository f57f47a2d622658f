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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/mindvoice-team/mindvoice-backend/pkg/validator"

	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/handler"
	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/repository"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/cache"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/database"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/elevenlabs"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
	httpmw "github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/storage"
	analysisuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
	assessmentuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/assessment"
	journaluse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/journal"
	transcriptionuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/transcription"
	useruse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/user"
	"github.com/mindvoice-team/mindvoice-backend/pkg/config"
	"github.com/mindvoice-team/mindvoice-backend/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize session store: Redis when enabled, in-memory otherwise
	var sessions cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		sessions = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory session store")
		sessions = cache.NewMemoryStore()
	}
	defer sessions.Close()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	// Initialize audio retention storage (optional)
	var audioStore *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		audioStore, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	} else {
		log.Println("🗄️  Audio retention disabled")
	}

	// Initialize external clients
	log.Println("🤖 Initializing analysis providers...")
	sttClient := elevenlabs.NewClient(&cfg.ElevenLabs)
	if !sttClient.Configured() {
		log.Println("⚠️  ELEVENLABS_API_KEY not set; /api/transcribe will report the missing key")
	}
	moodClient := moodapi.NewClient(cfg.MoodAPI.BaseURL)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize services
	log.Println("✨ Initializing services...")
	userService := useruse.NewUserService(userRepo, analysisRepo, journalRepo, assessmentRepo, sessions, jwtManager, cfg.JWT.AccessExpiry, logger)
	analysisService := analysisuse.NewAnalysisService(analysisRepo, userRepo, moodClient, audioStore, logger)
	assessmentService := assessmentuse.NewAssessmentService(assessmentRepo, userRepo, moodClient, logger)
	journalService := journaluse.NewJournalService(journalRepo, moodClient, logger)
	transcriptionService := transcriptionuse.NewTranscriptionService(sttClient, cfg.Upload.MaxAudioBytes, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(userService, logger)
	transcribeHandler := handler.NewTranscribeHandler(transcriptionService, logger)
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, logger)
	journalHandler := handler.NewJournalHandler(journalService, logger)
	dashboardHandler := handler.NewDashboardHandler(analysisService, logger)
	exportHandler := handler.NewExportHandler(userService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authMW := httpmw.NewAuthMiddleware(jwtManager)
	router := handler.NewRouter(cfg, authMW, authHandler, transcribeHandler, analysisHandler, assessmentHandler, journalHandler, dashboardHandler, exportHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
