package models

type Category struct {
	Model
	Name             string     `json:"name" gorm:"size:255;not null"`
	ParentCategoryID *uint      `json:"parent_category"`
	ParentCategory   *Category  `json:"-" gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:CASCADE"`
}

type Product struct {
	Model
	Name          string   `json:"name" gorm:"size:255;not null"`
	Description   string   `json:"description" gorm:"type:text"`
	Price         Money    `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity uint     `json:"stock_quantity" gorm:"not null;default:0"`
	CategoryID    uint     `json:"category" gorm:"not null;index"`
	Category      Category `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Review is unique per (product, user).
type Review struct {
	Model
	ProductID uint    `json:"product" gorm:"not null;uniqueIndex:idx_review_product_user"`
	Product   Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint    `json:"user" gorm:"not null;uniqueIndex:idx_review_product_user"`
	User      User    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Comment   string  `json:"comment" gorm:"type:text;not null"`
	Rating    uint    `json:"rating" gorm:"not null"`
}

type CategoryInput struct {
	Name             string `json:"name" binding:"required,max=255"`
	ParentCategoryID *uint  `json:"parent_category"`
}

type ProductInput struct {
	Name          string `json:"name" binding:"required,max=255"`
	Description   string `json:"description" binding:"required"`
	Price         *Money `json:"price" binding:"required"`
	StockQuantity uint   `json:"stock_quantity"`
	CategoryID    uint   `json:"category" binding:"required"`
}

type ReviewInput struct {
	ProductID uint   `json:"product" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
	Rating    uint   `json:"rating" binding:"required,min=1,max=5"`
}
