package controllers

import (
	"errors"
	"log"
	"net/http"
	"slices"

	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/tasks"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type OrderController struct {
	orders   *services.OrderService
	users    *services.UserService
	tokens   *utils.TokenIssuer
	hub      *tasks.Hub
	upgrader websocket.Upgrader
}

func NewOrderController(orders *services.OrderService, users *services.UserService, tokens *utils.TokenIssuer, hub *tasks.Hub, allowedOrigins []string) *OrderController {
	return &OrderController{
		orders: orders,
		users:  users,
		tokens: tokens,
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.List(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.orders.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}

func (c *OrderController) ChangeStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.OrderStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	order, err := c.orders.ChangeStatus(ctx.Request.Context(), middlewares.CurrentUserID(ctx), id, input.Status)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}

func (c *OrderController) AddPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.PaymentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	payment, err := c.orders.AddPayment(ctx.Request.Context(), middlewares.CurrentUserID(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, payment)
}

// StreamNotifications upgrades to a websocket that receives the caller's
// order notifications. Browsers cannot set headers on the handshake, so the
// access token comes in the "token" query parameter.
func (c *OrderController) StreamNotifications(ctx *gin.Context) {
	claims, err := c.tokens.ParseAccess(ctx.Query("token"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidToken)
		return
	}
	user, err := c.users.Get(ctx.Request.Context(), claims.UserID)
	if errors.Is(err, services.ErrUserNotFound) || (err == nil && !user.IsActive) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidToken)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	c.hub.Add(user.ID, conn)
	defer c.hub.Remove(user.ID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}
