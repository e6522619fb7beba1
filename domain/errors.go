package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidProduct     = errors.New("invalid product data")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrEmptyOrder         = errors.New("order has no products")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
