package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	review, err := c.reviews.Create(ctx.Request.Context(), middlewares.CurrentUserID(ctx), input)
	if err != nil {
		respondWithReferenceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, review)
}

func (c *ReviewController) GetReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	review, err := c.reviews.Get(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, review)
}

func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	review, err := c.reviews.Update(ctx.Request.Context(), middlewares.CurrentUserID(ctx), id, input)
	if err != nil {
		respondWithReferenceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, review)
}

func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reviews.Delete(ctx.Request.Context(), middlewares.CurrentUserID(ctx), id); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
