package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(api *gin.RouterGroup, c *controllers.CartController, requireAuth gin.HandlerFunc) {
	cart := api.Group("/shopping-cart", requireAuth)
	{
		cart.GET("/", c.GetCart)
		cart.DELETE("/", c.ClearCart)
		cart.POST("/products/", c.AddProduct)
		cart.DELETE("/products/", c.RemoveProduct)
		cart.POST("/order/", c.MakeOrder)
	}
}

func WishlistRoutes(api *gin.RouterGroup, c *controllers.WishlistController, requireAuth gin.HandlerFunc) {
	wishlist := api.Group("/wishlist", requireAuth)
	{
		wishlist.GET("/", c.GetWishlist)
		wishlist.DELETE("/", c.ClearWishlist)
		wishlist.POST("/products/", c.AddProduct)
		wishlist.DELETE("/products/", c.RemoveProduct)
	}
}
