package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users  *services.UserService
	tokens *utils.TokenIssuer
}

func NewAuthController(users *services.UserService, tokens *utils.TokenIssuer) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendBindingError(ctx, err)
		return
	}

	user, err := c.users.Register(ctx.Request.Context(), registerData)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgUserCreated,
		"id":      user.ID,
	})
}

// Token exchanges username and password for an access/refresh pair.
func (c *AuthController) Token(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendBindingError(ctx, err)
		return
	}

	user, err := c.users.Authenticate(ctx.Request.Context(), loginData.Username, loginData.Password)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	pair, err := c.tokens.IssuePair(user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, pair)
}

func (c *AuthController) Refresh(ctx *gin.Context) {
	var refreshData models.RefreshData
	if err := ctx.ShouldBindJSON(&refreshData); err != nil {
		sendBindingError(ctx, err)
		return
	}

	access, err := c.tokens.Refresh(refreshData.Refresh)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"access": access})
}

// User returns the account behind the bearer token.
func (c *AuthController) User(ctx *gin.Context) {
	user, err := c.users.Get(ctx.Request.Context(), middlewares.CurrentUserID(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"is_active":    user.IsActive,
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
	})
}
