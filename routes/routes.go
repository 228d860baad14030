package routes

import (
	"github.com/Kariqs/storefront-api/cache"
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/pagination"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/tasks"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are the collaborators shared by every route group.
type Dependencies struct {
	DB             *gorm.DB
	Cache          cache.Store
	Tokens         *utils.TokenIssuer
	Notifier       services.Enqueuer
	Hub            *tasks.Hub
	AllowedOrigins []string
}

// Setup mounts the API under /api and the endpoint listing at /.
func Setup(server *gin.Engine, deps Dependencies) error {
	if err := controllers.RegisterValidations(); err != nil {
		return err
	}
	if deps.Hub == nil {
		deps.Hub = tasks.NewHub()
	}

	paginator := pagination.New(deps.Cache)
	users := services.NewUserService(deps.DB)
	catalog := services.NewCatalogService(deps.DB)
	reviews := services.NewReviewService(deps.DB)
	carts := services.NewCartService(deps.DB)
	wishlists := services.NewWishlistService(deps.DB)
	orders := services.NewOrderService(deps.DB, deps.Notifier)

	requireAuth := middlewares.RequireAuth(deps.Tokens, users)

	DefaultRoutes(server, deps.DB)
	api := server.Group("/api")
	AuthRoutes(api, controllers.NewAuthController(users, deps.Tokens), requireAuth)
	ProductRoutes(api, controllers.NewCatalogController(catalog, reviews, paginator), requireAuth)
	ReviewRoutes(api, controllers.NewReviewController(reviews), requireAuth)
	CartRoutes(api, controllers.NewCartController(carts, orders), requireAuth)
	WishlistRoutes(api, controllers.NewWishlistController(wishlists), requireAuth)
	OrderRoutes(api, controllers.NewOrderController(orders, users, deps.Tokens, deps.Hub, deps.AllowedOrigins), requireAuth)
	return nil
}
