package domain

import (
	"errors"
	"fmt"
)

// Validation errors returned before the transaction starts
var (
	ErrNoItems                   = errors.New("sale must contain at least one item")
	ErrInvalidQuantity           = errors.New("item quantity must be greater than zero")
	ErrNegativeUnitPrice         = errors.New("unit price cannot be negative")
	ErrNegativeDiscount          = errors.New("discount cannot be negative")
	ErrInvalidPaymentMethod      = errors.New("payment method must be cash or transfer")
	ErrTransferReferenceRequired = errors.New("transfer reference is required for transfer payments")
	ErrSaleNotFound              = errors.New("sale not found")
)

// ProductNotFoundError reports a sale line referencing an unknown or
// inactive product.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found or inactive", e.ProductID)
}

// InsufficientStockError reports a sale line asking for more units than
// the product has on hand at commit time.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
