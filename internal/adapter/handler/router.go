package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/johnquangdev/transcript-archive/docs"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/database"
	"github.com/johnquangdev/transcript-archive/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	db                *gorm.DB
	gatherer          prometheus.Gatherer
	fileHandler       *File
	transcriptHandler *Transcript
	logger            *zap.Logger
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	gatherer prometheus.Gatherer,
	fileHandler *File,
	transcriptHandler *Transcript,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:               cfg,
		db:                db,
		gatherer:          gatherer,
		fileHandler:       fileHandler,
		transcriptHandler: transcriptHandler,
		logger:            logger,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}
	if !rt.cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	v1 := e.Group("/v1")
	rt.setupFileRoutes(v1)
	rt.setupTranscriptRoutes(v1)
}

// setupFileRoutes configures file registry routes
func (rt *Router) setupFileRoutes(g *echo.Group) {
	files := g.Group("/files")

	files.POST("", rt.fileHandler.RegisterFile)
	files.GET("/:id", rt.fileHandler.GetFile)
	files.DELETE("/:id", rt.fileHandler.DeleteFile)

	files.GET("/:id/transcripts", rt.transcriptHandler.ListTranscripts)
	files.POST("/:id/transcripts", rt.transcriptHandler.AttachTranscript)
}

// setupTranscriptRoutes configures transcript store routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcripts := g.Group("/transcripts")

	transcripts.GET("/:id", rt.transcriptHandler.GetTranscript)
	transcripts.PUT("/:id/confidence", rt.transcriptHandler.UpdateConfidence)
	transcripts.GET("/:id/low-confidence", rt.transcriptHandler.LowConfidenceSpans)
}

// healthCheck returns health status including database reachability
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := database.Ping(ctx, rt.db); err != nil {
		rt.logger.Warn("health check: database unreachable", zap.Error(err))
		status, code = "degraded", http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]interface{}{
		"status":      status,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
