package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, c *controllers.OrderController, requireAuth gin.HandlerFunc) {
	orders := api.Group("/orders", requireAuth)
	{
		orders.GET("/", c.GetOrders)
		orders.GET("/:id/", c.GetOrder)
		orders.POST("/:id/", c.ChangeStatus)
		orders.POST("/:id/payments/", c.AddPayment)
	}

	api.GET("/ws/orders/", c.StreamNotifications)
}
