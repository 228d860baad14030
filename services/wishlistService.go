package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

func getOrCreateWishlist(tx *gorm.DB, userID uint) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := tx.Where(models.Wishlist{UserID: userID}).FirstOrCreate(&wishlist).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		wishlist = models.Wishlist{}
		err = tx.Where("user_id = ?", userID).First(&wishlist).Error
	}
	return wishlist, err
}

func (s *WishlistService) Get(ctx context.Context, userID uint) (models.Wishlist, error) {
	db := s.db.WithContext(ctx)
	wishlist, err := getOrCreateWishlist(db, userID)
	if err != nil {
		return wishlist, fmt.Errorf("get wishlist: %w", err)
	}
	if err := db.Where("wishlist_id = ?", wishlist.ID).Order("id").Find(&wishlist.Items).Error; err != nil {
		return wishlist, fmt.Errorf("load wishlist items: %w", err)
	}
	return wishlist, nil
}

// AddProduct reports whether the product was newly added; adding a product
// that is already on the wishlist changes nothing.
func (s *WishlistService) AddProduct(ctx context.Context, userID, productID uint) (bool, error) {
	db := s.db.WithContext(ctx)
	if err := ensureProduct(db, productID); err != nil {
		return false, err
	}
	wishlist, err := getOrCreateWishlist(db, userID)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}

	var item models.WishlistItem
	result := db.Where(models.WishlistItem{WishlistID: wishlist.ID, ProductID: productID}).FirstOrCreate(&item)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		// A concurrent add inserted it first.
		return false, nil
	}
	if result.Error != nil {
		return false, fmt.Errorf("add wishlist item: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *WishlistService) RemoveProduct(ctx context.Context, userID, productID uint) error {
	db := s.db.WithContext(ctx)
	wishlist, err := getOrCreateWishlist(db, userID)
	if err != nil {
		return fmt.Errorf("get wishlist: %w", err)
	}
	err = db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).Delete(&models.WishlistItem{}).Error
	if err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}
	return nil
}

func (s *WishlistService) Clear(ctx context.Context, userID uint) error {
	db := s.db.WithContext(ctx)
	wishlist, err := getOrCreateWishlist(db, userID)
	if err != nil {
		return fmt.Errorf("get wishlist: %w", err)
	}
	if err := db.Where("wishlist_id = ?", wishlist.ID).Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	return nil
}
