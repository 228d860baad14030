package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DefaultRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/health/", controllers.HealthCheck(db))
}
