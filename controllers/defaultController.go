package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API. All endpoints live under /api.

AUTH
- POST "/api/auth/register/" - Create user account
- POST "/api/auth/token/" - Obtain access and refresh tokens
- POST "/api/auth/token/refresh/" - Refresh access token
- GET "/api/auth/user/" - Current user

CATALOG
- GET "/api/categories/" - List categories
- GET "/api/categories/{id}/" - Category details
- POST "/api/categories/" - Create category (staff)
- GET "/api/products/" - List products
- GET "/api/products/{id}/" - Product details
- GET "/api/products/{id}/reviews/" - Product reviews
- POST "/api/products/" - Create product (staff)
- GET "/api/export/products/" - Export products as xlsx (staff)

REVIEWS
- POST "/api/reviews/" - Add review
- GET, PUT, DELETE "/api/reviews/{id}/" - Review details, update, delete

SHOPPING CART
- GET, DELETE "/api/shopping-cart/" - View or clear cart
- POST "/api/shopping-cart/products/" - Add product
- DELETE "/api/shopping-cart/products/?product_id=&quantity=" - Remove product
- POST "/api/shopping-cart/order/" - Place order from cart

WISHLIST
- GET, DELETE "/api/wishlist/" - View or clear wishlist
- POST "/api/wishlist/products/" - Add product
- DELETE "/api/wishlist/products/?product_id=" - Remove product

ORDERS
- GET "/api/orders/" - List orders
- GET "/api/orders/{id}/" - Order details
- POST "/api/orders/{id}/" - Change order status
- POST "/api/orders/{id}/payments/" - Record payment
- GET "/api/ws/orders/?token=" - Order notifications over websocket`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// HealthCheck reports whether the database answers.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			log.Println("Health check failed:", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
