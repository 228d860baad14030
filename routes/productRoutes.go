package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(api *gin.RouterGroup, c *controllers.CatalogController, requireAuth gin.HandlerFunc) {
	requireAdmin := middlewares.RequireAdmin()

	api.GET("/categories/", c.GetCategories)
	api.GET("/categories/:id/", c.GetCategory)
	api.POST("/categories/", requireAuth, requireAdmin, c.CreateCategory)

	api.GET("/products/", c.GetProducts)
	api.GET("/products/:id/", c.GetProduct)
	api.GET("/products/:id/reviews/", c.GetProductReviews)
	api.POST("/products/", requireAuth, requireAdmin, c.CreateProduct)

	api.GET("/export/products/", requireAuth, requireAdmin, c.ExportProducts)
}
