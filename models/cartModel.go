package models

// ShoppingCart is created lazily, one per user.
type ShoppingCart struct {
	Model
	UserID uint       `json:"user" gorm:"not null;uniqueIndex"`
	User   User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is unique per (cart, product); re-adding a product grows Quantity.
type CartItem struct {
	Model
	CartID    uint    `json:"cart" gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint    `json:"product" gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity  int     `json:"quantity" gorm:"not null;default:1"`
}

type CartProductInput struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" form:"quantity" binding:"omitempty,min=1"`
}

type MakeOrderInput struct {
	Items []uint `json:"items"`
}
