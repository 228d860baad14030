package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts  *services.CartService
	orders *services.OrderService
}

func NewCartController(carts *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{carts: carts, orders: orders}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	cart, err := c.carts.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	if err := c.carts.Clear(ctx.Request.Context(), middlewares.CurrentUserID(ctx)); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddProduct reads product_id and quantity from the body.
func (c *CartController) AddProduct(ctx *gin.Context) {
	var input models.CartProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	err := c.carts.AddProduct(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input.ProductID, input.Quantity)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RemoveProduct reads product_id and quantity from the query string.
func (c *CartController) RemoveProduct(ctx *gin.Context) {
	var input models.CartProductInput
	if err := ctx.ShouldBindQuery(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	err := c.carts.RemoveProduct(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input.ProductID, input.Quantity)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// MakeOrder orders the cart lines listed in "items", or the whole cart when
// the list is empty or the body is missing.
func (c *CartController) MakeOrder(ctx *gin.Context) {
	var input models.MakeOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		sendBindingError(ctx, err)
		return
	}

	orderID, err := c.orders.MakeOrder(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input.Items)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order_id": orderID})
}
