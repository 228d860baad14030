package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CategoriesQuery() *gorm.DB {
	return s.db.Model(&models.Category{}).Order("id")
}

func (s *CatalogService) ProductsQuery() *gorm.DB {
	return s.db.Model(&models.Product{}).Order("id")
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return category, ErrCategoryNotFound
	}
	if err != nil {
		return category, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	category := models.Category{Name: input.Name, ParentCategoryID: input.ParentCategoryID}
	if input.ParentCategoryID != nil {
		if _, err := s.GetCategory(ctx, *input.ParentCategoryID); err != nil {
			return category, err
		}
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return category, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, ErrProductNotFound
	}
	if err != nil {
		return product, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product := models.Product{
		Name:          input.Name,
		Description:   input.Description,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}
	if input.Price == nil {
		return product, ErrPriceRequired
	}
	if input.Price.IsNegative() {
		return product, ErrInvalidPrice
	}
	product.Price = models.NewMoney(input.Price.Decimal)
	if _, err := s.GetCategory(ctx, input.CategoryID); err != nil {
		return product, err
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return product, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// AllProducts returns every product ordered by id, for exports.
func (s *CatalogService) AllProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
