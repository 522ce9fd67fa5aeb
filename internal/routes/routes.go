// Package routes defines HTTP routes for the EHR backend.
package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/kaifmomin2004/EHR-Project/docs"
	"github.com/kaifmomin2004/EHR-Project/internal/config"
	"github.com/kaifmomin2004/EHR-Project/internal/handlers"
	"github.com/kaifmomin2004/EHR-Project/internal/metrics"
	"github.com/kaifmomin2004/EHR-Project/internal/middleware"
	"github.com/kaifmomin2004/EHR-Project/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the request handlers wired by Setup.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Patient *handlers.PatientHandler
	Record  *handlers.RecordHandler
	User    *handlers.UserHandler
	Health  *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	h Handlers,
	tokens service.TokenService,
	cfg *config.Config,
	collector *metrics.Metrics,
	logger *slog.Logger,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	router.Use(collector.Middleware())

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(tokens, logger), h.Auth.Me)
	}

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(tokens, logger))
	{
		protected.POST("/patients", h.Patient.Create)
		protected.GET("/patients", h.Patient.List)
		protected.GET("/patients/me", h.Patient.GetOwn)
		protected.PUT("/patients/me", h.Patient.UpdateOwn)
		protected.GET("/patients/:id", h.Patient.GetByID)

		protected.POST("/medical-records", h.Record.Create)
		protected.GET("/medical-records", h.Record.List)
		protected.GET("/medical-records/:id", h.Record.GetByID)

		protected.GET("/users", h.User.List)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
