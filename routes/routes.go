package routes

import (
	"net/http"

	"DentalDesk/cache"
	"DentalDesk/config"
	"DentalDesk/controllers"
	"DentalDesk/database"
	"DentalDesk/handlers"
	"DentalDesk/middlewares"
	"DentalDesk/repositories"
	"DentalDesk/services"
	"DentalDesk/session"
	"DentalDesk/utils"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(store *database.Store, cache *cache.Cache, config *config.AppConfig, mailer *utils.Mailer) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Access-Token"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())
	router.Use(middlewares.MetricsMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(store)
	appointmentRepo := repositories.NewAppointmentRepository(store)
	userRepo := repositories.NewUserRepository(store)

	sessions := session.NewStore(cache)

	patientService := services.NewPatientService(patientRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	userService := services.NewUserService(userRepo, sessions, cache, mailer)
	reminderService := services.NewReminderService(appointmentRepo, patientRepo, mailer)

	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, reminderService)
	authHandler := handlers.NewAuthHandler(userService)
	adminHandler := handlers.NewAdminHandler(store, cache)

	// Register routes
	controllers.SetupRootRoutes(router, adminHandler)
	controllers.SetupAuthRoutes(router, authHandler)
	controllers.SetupPracticeRoutes(router, patientHandler, appointmentHandler)

	return router
}
