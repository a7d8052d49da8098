package controllers

import (
	"DentalDesk/handlers"
	"DentalDesk/middlewares"
	"DentalDesk/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the authentication and user management routes.
func SetupAuthRoutes(router *gin.Engine, authHandler *handlers.AuthHandler) {
	auth := router.Group("/auth")

	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/password-reset/request", authHandler.RequestPasswordReset)
	auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	protected := auth.Group("/", middlewares.TokenAuthMiddleware())
	protected.GET("/session", authHandler.Session)
	protected.POST("/logoff", authHandler.Logoff)
	protected.POST("/change-password", authHandler.ChangePassword)

	admin := auth.Group("/", middlewares.TokenAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
	admin.POST("/register", authHandler.Register)
	admin.GET("/users", authHandler.GetAllUsers)
	admin.DELETE("/users/:user_id", authHandler.DeleteAccount)
}
