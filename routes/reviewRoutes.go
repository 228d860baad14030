package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(api *gin.RouterGroup, c *controllers.ReviewController, requireAuth gin.HandlerFunc) {
	reviews := api.Group("/reviews", requireAuth)
	{
		reviews.POST("/", c.CreateReview)
		reviews.GET("/:id/", c.GetReview)
		reviews.PUT("/:id/", c.UpdateReview)
		reviews.DELETE("/:id/", c.DeleteReview)
	}
}
