package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// getOrCreateCart returns the user's cart, creating it on first use. When a
// concurrent request inserts the cart first, the existing row is read back.
func getOrCreateCart(tx *gorm.DB, userID uint) (models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := tx.Where(models.ShoppingCart{UserID: userID}).FirstOrCreate(&cart).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		cart = models.ShoppingCart{}
		err = tx.Where("user_id = ?", userID).First(&cart).Error
	}
	return cart, err
}

func ensureProduct(tx *gorm.DB, productID uint) error {
	var count int64
	if err := tx.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Get returns the user's cart with its items, creating the cart on first use.
func (s *CartService) Get(ctx context.Context, userID uint) (models.ShoppingCart, error) {
	db := s.db.WithContext(ctx)
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return cart, fmt.Errorf("get cart: %w", err)
	}
	if err := db.Where("cart_id = ?", cart.ID).Order("id").Find(&cart.Items).Error; err != nil {
		return cart, fmt.Errorf("load cart items: %w", err)
	}
	return cart, nil
}

// AddProduct puts quantity units of a product in the cart. A product already
// in the cart keeps its single line and the quantities are summed.
func (s *CartService) AddProduct(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	db := s.db.WithContext(ctx)
	if err := ensureProduct(db, productID); err != nil {
		return err
	}
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	var item models.CartItem
	result := db.Where(models.CartItem{CartID: cart.ID, ProductID: productID}).
		Attrs(models.CartItem{Quantity: quantity}).
		FirstOrCreate(&item)
	created := result.RowsAffected == 1
	err = result.Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert to a concurrent add; merge into the winner's line.
		item, created = models.CartItem{}, false
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	}
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	if created {
		return nil
	}

	if err := db.Model(&item).Update("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// RemoveProduct takes quantity units of a product out of the cart, dropping
// the line once nothing is left. Removing an absent product is a no-op.
func (s *CartService) RemoveProduct(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	db := s.db.WithContext(ctx)
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find cart item: %w", err)
	}

	if item.Quantity > quantity {
		err = db.Model(&item).Update("quantity", gorm.Expr("quantity - ?", quantity)).Error
	} else {
		err = db.Delete(&item).Error
	}
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	db := s.db.WithContext(ctx)
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
