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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	pkgvalidator "github.com/johnquangdev/transcript-archive/pkg/validator"

	"github.com/johnquangdev/transcript-archive/internal/adapter/handler"
	"github.com/johnquangdev/transcript-archive/internal/adapter/repository"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/cache"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/transcript-archive/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
	"github.com/johnquangdev/transcript-archive/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/logger"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

// @title           Transcript Archive API
// @version         1.0
// @description     File registry and transcript store with word-error-rate confidence payloads

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	log.Printf("📦 Connecting to database (%s)...", cfg.Database.Driver)
	db, err := database.Open(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if !cfg.Database.AutoMigrate {
		log.Println("🔄 Skipping migrations; run `archivectl migrate up` to manage the schema")
	}

	log.Printf("📦 Initializing confidence cache (%s)...", cfg.Cache.Type)
	store, err := cache.NewStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	if store != nil {
		defer store.Close()
	}
	confidenceCache := cache.NewConfidenceCache(store, cfg.Cache.TTL, appLogger)

	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	fileRepo := repository.NewFileRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)

	// Initialize services
	registryService := registry.NewRegistryService(fileRepo, confidenceCache, m, appLogger)
	transcriptService := transcript.NewTranscriptService(transcriptRepo, confidenceCache, m, appLogger)

	// Initialize handlers
	fileHandler := handler.NewFileHandler(registryService, appLogger)
	transcriptHandler := handler.NewTranscriptHandler(transcriptService, registryService, appLogger)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(httpmw.RequestLogger(appLogger))
	e.Use(middleware.Recover())
	e.Use(httpmw.Metrics(m))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, db, reg, fileHandler, transcriptHandler, appLogger)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		appLogger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

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
