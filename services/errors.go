package services

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartNotFound       = errors.New("shopping cart not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotOwner           = errors.New("you do not have permission to perform this action")
	ErrNoItemsToOrder     = errors.New("no items to order")
	ErrDuplicateReview    = errors.New("the fields product, user must make a unique set")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidPayment     = errors.New("invalid payment")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrPriceRequired      = errors.New("price is required")
	ErrUserExists         = errors.New("a user with that username already exists")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)
