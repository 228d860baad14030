package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ProductReviewsQuery is the base query for the paginated reviews of a product.
func (s *ReviewService) ProductReviewsQuery(productID uint) *gorm.DB {
	return s.db.Model(&models.Review{}).Where("product_id = ?", productID).Order("id")
}

func (s *ReviewService) Get(ctx context.Context, reviewID uint) (models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).First(&review, reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review, ErrReviewNotFound
	}
	if err != nil {
		return review, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

// Create stores the caller's review of a product. A user reviews a product
// at most once.
func (s *ReviewService) Create(ctx context.Context, userID uint, input models.ReviewInput) (models.Review, error) {
	db := s.db.WithContext(ctx)
	review := models.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Comment:   input.Comment,
		Rating:    input.Rating,
	}

	if err := ensureProduct(db, input.ProductID); err != nil {
		return review, err
	}
	var count int64
	if err := db.Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", input.ProductID, userID).
		Count(&count).Error; err != nil {
		return review, fmt.Errorf("check review: %w", err)
	}
	if count > 0 {
		return review, ErrDuplicateReview
	}

	if err := db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return review, ErrDuplicateReview
		}
		return review, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) findOwned(db *gorm.DB, userID, reviewID uint) (models.Review, error) {
	var review models.Review
	err := db.First(&review, reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review, ErrReviewNotFound
	}
	if err != nil {
		return review, fmt.Errorf("find review: %w", err)
	}
	if review.UserID != userID {
		return review, ErrNotOwner
	}
	return review, nil
}

// Update replaces the fields of the caller's own review. Moving a review to
// another product is subject to the same one-review-per-product rule.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, input models.ReviewInput) (models.Review, error) {
	db := s.db.WithContext(ctx)
	review, err := s.findOwned(db, userID, reviewID)
	if err != nil {
		return review, err
	}

	if input.ProductID != review.ProductID {
		if err := ensureProduct(db, input.ProductID); err != nil {
			return review, err
		}
		var count int64
		if err := db.Model(&models.Review{}).
			Where("product_id = ? AND user_id = ? AND id <> ?", input.ProductID, userID, review.ID).
			Count(&count).Error; err != nil {
			return review, fmt.Errorf("check review: %w", err)
		}
		if count > 0 {
			return review, ErrDuplicateReview
		}
	}
	review.ProductID = input.ProductID
	review.Comment = input.Comment
	review.Rating = input.Rating

	if err := db.Save(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return review, ErrDuplicateReview
		}
		return review, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint) error {
	db := s.db.WithContext(ctx)
	review, err := s.findOwned(db, userID, reviewID)
	if err != nil {
		return err
	}
	if err := db.Delete(&review).Error; err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
