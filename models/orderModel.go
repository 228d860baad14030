package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCanceled   OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDone, OrderStatusCanceled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodBank:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	Model
	UserID     uint        `json:"user" gorm:"not null;index"`
	User       User        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Status     OrderStatus `json:"status" gorm:"size:20;not null;default:new"`
	TotalPrice Money       `json:"total_price" gorm:"type:decimal(10,2);not null;default:0"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments   []Payment   `json:"payments" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// RecalculateTotal sets TotalPrice to the sum of the order's persisted items.
// It must run after the items are written; a freshly created order stays at 0.
func (o *Order) RecalculateTotal(tx *gorm.DB) error {
	var items []OrderItem
	if err := tx.Where("order_id = ?", o.ID).Find(&items).Error; err != nil {
		return err
	}
	total := Money{}
	for _, item := range items {
		total = total.Plus(item.Price)
	}
	o.TotalPrice = total
	return nil
}

// OrderItem.Price is a snapshot of unit price × quantity taken at order time.
type OrderItem struct {
	Model
	OrderID   uint    `json:"order" gorm:"not null;index"`
	ProductID uint    `json:"product" gorm:"not null;index"`
	Product   Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Price     Money   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity  int     `json:"quantity" gorm:"not null;default:1"`
}

func NewOrderItem(orderID uint, product Product, quantity int) OrderItem {
	return OrderItem{
		OrderID:   orderID,
		ProductID: product.ID,
		Price:     product.Price.Times(quantity),
		Quantity:  quantity,
	}
}

type Payment struct {
	Model
	OrderID       uint           `json:"order" gorm:"not null;index"`
	PaymentMethod PaymentMethod  `json:"payment_method" gorm:"size:50;not null"`
	Amount        Money          `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status        PaymentStatus  `json:"status" gorm:"size:20;not null;default:pending"`
	Details       datatypes.JSON `json:"details,omitempty"`
}

type OrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required,orderstatus"`
}

type PaymentInput struct {
	PaymentMethod PaymentMethod  `json:"payment_method" binding:"required,paymentmethod"`
	Amount        Money          `json:"amount"`
	Details       datatypes.JSON `json:"details"`
}
