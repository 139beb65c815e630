package models

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrStockLimit      = errors.New("maximum stock reached")
	ErrEmptyCart       = errors.New("cart is empty")
)
