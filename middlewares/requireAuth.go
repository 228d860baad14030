package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	UserKey   = "user"
	UserIDKey = "userID"
)

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	Get(ctx context.Context, userID uint) (models.User, error)
}

// RequireAuth accepts only access tokens sent as "Authorization: Bearer <token>"
// whose user still exists and is active.
func RequireAuth(tokens *utils.TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication credentials were not provided."})
			return
		}

		claims, err := tokens.ParseAccess(strings.TrimSpace(tokenString))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Given token not valid for any token type"})
			return
		}

		user, err := users.Get(ctx.Request.Context(), claims.UserID)
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Printf("Failed to load user %d: %v", claims.UserID, err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is inactive"})
			return
		}

		ctx.Set(UserKey, user)
		ctx.Set(UserIDKey, user.ID)
		ctx.Next()
	}
}

// CurrentUserID returns the id RequireAuth stored on the context.
func CurrentUserID(ctx *gin.Context) uint {
	return ctx.GetUint(UserIDKey)
}

// CurrentUser returns the account RequireAuth loaded for this request.
func CurrentUser(ctx *gin.Context) (models.User, bool) {
	value, exists := ctx.Get(UserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
