package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Enqueuer hands an order notification to the background workers. It must
// not block and never reports delivery back.
type Enqueuer interface {
	Enqueue(orderID uint, message string)
}

type OrderService struct {
	db       *gorm.DB
	notifier Enqueuer
}

func NewOrderService(db *gorm.DB, notifier Enqueuer) *OrderService {
	return &OrderService{db: db, notifier: notifier}
}

// MakeOrder turns cart lines into a new order and removes them from the cart.
// With no itemIDs every line is ordered, otherwise only the lines whose ids
// are listed. Each order item captures the product's current price times the
// quantity, and the order total is computed once all items exist.
func (s *OrderService) MakeOrder(ctx context.Context, userID uint, itemIDs []uint) (uint, error) {
	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.ShoppingCart
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		if err != nil {
			return err
		}

		query := tx.Preload("Product").Where("cart_id = ?", cart.ID)
		if len(itemIDs) > 0 {
			query = query.Where("id IN ?", itemIDs)
		}
		var cartItems []models.CartItem
		if err := query.Order("id").Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrNoItemsToOrder
		}

		order := models.Order{UserID: userID, Status: models.OrderStatusNew}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, cartItem := range cartItems {
			orderItem := models.NewOrderItem(order.ID, cartItem.Product, cartItem.Quantity)
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.CartItem{}, cartItem.ID).Error; err != nil {
				return err
			}
		}

		if err := order.RecalculateTotal(tx); err != nil {
			return err
		}
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCartNotFound) || errors.Is(err, ErrNoItemsToOrder) {
			return 0, err
		}
		return 0, fmt.Errorf("make order: %w", err)
	}
	return orderID, nil
}

func withLines(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

// List returns the caller's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := withLines(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one of the caller's orders. Orders of other users are reported
// as missing.
func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (models.Order, error) {
	var order models.Order
	err := withLines(s.db.WithContext(ctx)).Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrOrderNotFound
	}
	if err != nil {
		return order, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *OrderService) findOwned(db *gorm.DB, userID, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrOrderNotFound
	}
	if err != nil {
		return order, fmt.Errorf("find order: %w", err)
	}
	if order.UserID != userID {
		return order, ErrNotOwner
	}
	return order, nil
}

// ChangeStatus updates the status of the caller's order and queues a
// notification about it.
func (s *OrderService) ChangeStatus(ctx context.Context, userID, orderID uint, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidStatus
	}
	db := s.db.WithContext(ctx)
	order, err := s.findOwned(db, userID, orderID)
	if err != nil {
		return order, err
	}

	order.Status = status
	if err := order.RecalculateTotal(db); err != nil {
		return order, fmt.Errorf("recalculate total: %w", err)
	}
	if err := db.Save(&order).Error; err != nil {
		return order, fmt.Errorf("save order: %w", err)
	}

	s.notifier.Enqueue(order.ID, fmt.Sprintf("Order status changed to %s", order.Status))
	return s.Get(ctx, userID, orderID)
}

// AddPayment records a pending payment against the caller's order. The amount
// is taken as given and is not checked against the order total.
func (s *OrderService) AddPayment(ctx context.Context, userID, orderID uint, input models.PaymentInput) (models.Payment, error) {
	if !input.PaymentMethod.Valid() || input.Amount.IsNegative() {
		return models.Payment{}, ErrInvalidPayment
	}
	db := s.db.WithContext(ctx)
	if _, err := s.findOwned(db, userID, orderID); err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		OrderID:       orderID,
		PaymentMethod: input.PaymentMethod,
		Amount:        models.NewMoney(input.Amount.Decimal),
		Status:        models.PaymentStatusPending,
		Details:       input.Details,
	}
	if err := db.Create(&payment).Error; err != nil {
		return payment, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}
