// Package main is the entry point for the EHR backend.
//
// Tokens are fixed-TTL and non-revocable: there is no refresh endpoint,
// no server-side logout and no revocation list. A deleted account is
// de-authorized anyway because verification resolves the token subject
// against the credential store on every request.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/kaifmomin2004/EHR-Project/docs"
	"github.com/kaifmomin2004/EHR-Project/internal/config"
	"github.com/kaifmomin2004/EHR-Project/internal/handlers"
	"github.com/kaifmomin2004/EHR-Project/internal/metrics"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
	"github.com/kaifmomin2004/EHR-Project/internal/routes"
	"github.com/kaifmomin2004/EHR-Project/internal/service"
	"github.com/kaifmomin2004/EHR-Project/pkg/database"
	"github.com/kaifmomin2004/EHR-Project/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// @title EHR Backend API
// @version 1.0
// @description Multi-role electronic health record backend with token-based authentication
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.PatientProfile{}, &models.MedicalRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	recordRepo := repository.NewMedicalRecordRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry, userRepo)
	if tokenService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, tokenService)
	patientService := service.NewPatientService(patientRepo)
	recordService := service.NewRecordService(recordRepo, patientRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	h := routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService, logger),
		Patient: handlers.NewPatientHandler(patientService, logger),
		Record:  handlers.NewRecordHandler(recordService, logger),
		User:    handlers.NewUserHandler(userService, logger),
		Health:  handlers.NewHealthHandler(),
	}

	collector := metrics.New(prometheus.DefaultRegisterer)

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, h, tokenService, cfg, collector, logger)

	logger.Info("starting EHR backend", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
