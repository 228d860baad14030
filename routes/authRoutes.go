package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, c *controllers.AuthController, requireAuth gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register/", c.Register)
		auth.POST("/token/", c.Token)
		auth.POST("/token/refresh/", c.Refresh)
		auth.GET("/user/", requireAuth, c.User)
	}
}
