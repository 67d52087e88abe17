package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrNoOpenPeriod     = fmt.Errorf("no open profit period")

	// 409 Conflict — недопустимые переходы состояний
	ErrAlreadyConfirmed    = fmt.Errorf("order already confirmed")
	ErrAlreadyClosed       = fmt.Errorf("order already closed")
	ErrNotApproved         = fmt.Errorf("order is not approved")
	ErrOrderClosed         = fmt.Errorf("order is closed")
	ErrInsufficientStock   = fmt.Errorf("insufficient stock")
	ErrConcurrencyConflict = fmt.Errorf("concurrent write conflict")

	// 400 Bad Request
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrMissingFields         = fmt.Errorf("missing required fields")
	ErrInvalidPrice          = fmt.Errorf("invalid price")
	ErrPricePrecision        = fmt.Errorf("price must have at most 2 decimal places")
	ErrOfferExceedsOriginal  = fmt.Errorf("offer price exceeds original price")
	ErrNegativeQuantity      = fmt.Errorf("quantity must not be negative")
	ErrNoOrderItems          = fmt.Errorf("order has no items")
	ErrProductNameRequired   = fmt.Errorf("product name is required")
	ErrCostMustBeNonNegative = fmt.Errorf("cost amount must not be negative")
	ErrCostNameRequired      = fmt.Errorf("cost name is required")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// InsufficientStockError уточняет, на какой позиции заказа не хватило остатков.
type InsufficientStockError struct {
	ProductID int64
	Dimension string // "color" или "size"
	Label     string
	Requested int32
	Available int32
}

func (i *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock: product %d, %s %q, requested %d, available %d",
		i.ProductID, i.Dimension, i.Label, i.Requested, i.Available,
	)
}

// Is сопоставляет типизированную ошибку с общим ErrInsufficientStock.
func (i *InsufficientStockError) Is(target error) bool {
	return errors.Is(target, ErrInsufficientStock)
}

func NewInsufficientStockError(productID int64, dimension, label string, requested, available int32) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Dimension: dimension,
		Label:     label,
		Requested: requested,
		Available: available,
	}
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
