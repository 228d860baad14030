package models

type Wishlist struct {
	Model
	UserID uint           `json:"user" gorm:"not null;uniqueIndex"`
	User   User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Items  []WishlistItem `json:"items" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

type WishlistItem struct {
	Model
	WishlistID uint    `json:"wishlist" gorm:"not null;uniqueIndex:idx_wishlist_product"`
	ProductID  uint    `json:"product" gorm:"not null;uniqueIndex:idx_wishlist_product"`
	Product    Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type WishlistProductInput struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
}
