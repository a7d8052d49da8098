package controllers

import (
	"net/http"

	"DentalDesk/handlers"
	"DentalDesk/middlewares"
	"DentalDesk/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRootRoutes registers the root, health, metrics and admin routes.
func SetupRootRoutes(router *gin.Engine, adminHandler *handlers.AdminHandler) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the DentalDesk API"})
	})

	router.GET("/health", adminHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/admin", middlewares.TokenAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
	admin.POST("/backup", adminHandler.Backup)
	admin.POST("/restore", adminHandler.Restore)
}
