package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront-api/pagination"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Standard response messages
const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
	msgNotFound            = "Not found."
	msgInvalidPage         = "Invalid page."
	msgInvalidToken        = "Token is invalid or expired"
	msgUserCreated         = "User created successfully."
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func sendBindingError(ctx *gin.Context, err error) {
	sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"message": msgInvalidInput, "error": err.Error()})
}

// respondWithServiceError maps a service error onto the HTTP status it stands
// for. Anything unrecognised is logged and answered with a 500.
func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrUserNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		sendErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		sendErrorResponse(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNoItemsToOrder),
		errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrPriceRequired),
		errors.Is(err, services.ErrUserExists):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

// respondWithReferenceError is used where a missing product or category was
// named in the request body, which makes the body invalid rather than the
// resource missing.
func respondWithReferenceError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrProductNotFound) || errors.Is(err, services.ErrCategoryNotFound) {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	respondWithServiceError(ctx, err)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return uint(id), true
}

// respondWithPage serves one cached page of query using the limit and offset
// query parameters.
func respondWithPage[T any](ctx *gin.Context, paginator *pagination.Paginator, query *gorm.DB) {
	params := pagination.ParseParams(ctx.Request.URL.Query())
	key := pagination.CacheKey(ctx.Request.URL.Path, params)

	page, err := pagination.Paginate[T](ctx.Request.Context(), paginator, query, key, params)
	if errors.Is(err, pagination.ErrInvalidPage) {
		sendErrorResponse(ctx, http.StatusNotFound, msgInvalidPage)
		return
	}
	if err != nil {
		log.Println("Pagination error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, pagination.NewResponse(ctx.Request, params, page))
}
