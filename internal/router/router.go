// Package router wires handlers and middleware into a gin engine.
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/newsverify/api-backend/internal/handlers"
	"github.com/newsverify/api-backend/internal/metrics"
	"github.com/newsverify/api-backend/internal/middleware"
	"github.com/newsverify/api-backend/internal/services"
)

// Route paths
const (
	HealthPath  = "/api/health"
	AnalyzePath = "/api/analyze"
	MetricsPath = "/api/metrics"
	DocsPath    = "/api/docs/*any"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Health       *services.HealthService
	Analysis     *services.AnalysisService
	Metrics      *metrics.Registry
	Logger       *slog.Logger
	CORSOrigins  []string
	MaxBodyBytes int64
	EnableDocs   bool
}

// New builds the engine with every API route registered.
func New(deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger.With("component", "http")),
		middleware.Recovery(logger),
		middleware.CORS(deps.CORSOrigins),
	)

	allowed := handlers.AllowedMethods{
		HealthPath:  {http.MethodGet, http.MethodOptions},
		AnalyzePath: {http.MethodPost, http.MethodOptions},
		MetricsPath: {http.MethodGet},
	}
	r.NoMethod(handlers.MethodNotAllowed(allowed))
	r.NoRoute(handlers.NotFound)

	healthHandler := handlers.NewHealthHandler(deps.Health)
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Analysis, deps.MaxBodyBytes)
	metricsHandler := handlers.NewMetricsHandler(deps.Metrics)
	preflight := middleware.Preflight(deps.CORSOrigins)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.OPTIONS("/health", preflight)

		api.POST("/analyze", analyzeHandler.Analyze)
		api.OPTIONS("/analyze", preflight)

		api.GET("/metrics", metricsHandler.Metrics)
	}

	if deps.EnableDocs {
		r.GET(DocsPath, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
