package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlists *services.WishlistService
}

func NewWishlistController(wishlists *services.WishlistService) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

func (c *WishlistController) GetWishlist(ctx *gin.Context) {
	wishlist, err := c.wishlists.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, wishlist)
}

func (c *WishlistController) ClearWishlist(ctx *gin.Context) {
	if err := c.wishlists.Clear(ctx.Request.Context(), middlewares.CurrentUserID(ctx)); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddProduct answers 201 when the product was added and 200 when it was
// already on the wishlist.
func (c *WishlistController) AddProduct(ctx *gin.Context) {
	var input models.WishlistProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	created, err := c.wishlists.AddProduct(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input.ProductID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	if created {
		ctx.Status(http.StatusCreated)
		return
	}
	ctx.Status(http.StatusOK)
}

func (c *WishlistController) RemoveProduct(ctx *gin.Context) {
	var input models.WishlistProductInput
	if err := ctx.ShouldBindQuery(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	if err := c.wishlists.RemoveProduct(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input.ProductID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
