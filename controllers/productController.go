package controllers

import (
	"log"
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/pagination"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog   *services.CatalogService
	reviews   *services.ReviewService
	paginator *pagination.Paginator
}

func NewCatalogController(catalog *services.CatalogService, reviews *services.ReviewService, paginator *pagination.Paginator) *CatalogController {
	return &CatalogController{catalog: catalog, reviews: reviews, paginator: paginator}
}

func (c *CatalogController) GetCategories(ctx *gin.Context) {
	respondWithPage[models.Category](ctx, c.paginator, c.catalog.CategoriesQuery())
}

func (c *CatalogController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.catalog.GetCategory(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, category)
}

func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var input models.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	category, err := c.catalog.CreateCategory(ctx.Request.Context(), input)
	if err != nil {
		respondWithReferenceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, category)
}

func (c *CatalogController) GetProducts(ctx *gin.Context) {
	respondWithPage[models.Product](ctx, c.paginator, c.catalog.ProductsQuery())
}

func (c *CatalogController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := c.catalog.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, product)
}

func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindingError(ctx, err)
		return
	}

	product, err := c.catalog.CreateProduct(ctx.Request.Context(), input)
	if err != nil {
		respondWithReferenceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, product)
}

// GetProductReviews lists the reviews of one product. An unknown product
// simply has no reviews.
func (c *CatalogController) GetProductReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	respondWithPage[models.Review](ctx, c.paginator, c.reviews.ProductReviewsQuery(id))
}

// ExportProducts streams the whole catalog as an Excel workbook.
func (c *CatalogController) ExportProducts(ctx *gin.Context) {
	products, err := c.catalog.AllProducts(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=products.xlsx")
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Transfer-Encoding", "binary")
	ctx.Header("Expires", "0")
	ctx.Status(http.StatusOK)

	if err := utils.WriteProductsWorkbook(ctx.Writer, products); err != nil {
		log.Println("Excel export error:", err)
	}
}
