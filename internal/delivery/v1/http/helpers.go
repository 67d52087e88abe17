package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrOfferExceedsOriginal):
		return http.StatusBadRequest, e.ErrOfferExceedsOriginal.Error()
	case errors.Is(err, e.ErrNegativeQuantity):
		return http.StatusBadRequest, e.ErrNegativeQuantity.Error()
	case errors.Is(err, e.ErrNoOrderItems):
		return http.StatusBadRequest, e.ErrNoOrderItems.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrCostNameRequired):
		return http.StatusBadRequest, e.ErrCostNameRequired.Error()
	case errors.Is(err, e.ErrCostMustBeNonNegative):
		return http.StatusBadRequest, e.ErrCostMustBeNonNegative.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrNoOpenPeriod):
		return http.StatusNotFound, e.ErrNoOpenPeriod.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, insufficientStockMessage(err)
	case errors.Is(err, e.ErrAlreadyConfirmed):
		return http.StatusConflict, e.ErrAlreadyConfirmed.Error()
	case errors.Is(err, e.ErrAlreadyClosed):
		return http.StatusConflict, e.ErrAlreadyClosed.Error()
	case errors.Is(err, e.ErrNotApproved):
		return http.StatusConflict, e.ErrNotApproved.Error()
	case errors.Is(err, e.ErrOrderClosed):
		return http.StatusConflict, e.ErrOrderClosed.Error()
	case errors.Is(err, e.ErrConcurrencyConflict):
		return http.StatusConflict, e.ErrConcurrencyConflict.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// insufficientStockMessage достаёт детали нехватки остатка, если они есть
func insufficientStockMessage(err error) string {
	var stockErr *e.InsufficientStockError
	if errors.As(err, &stockErr) {
		return stockErr.Error()
	}
	return e.ErrInsufficientStock.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseIDParam читает целочисленный path-параметр
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrStatusBadRequest
	}
	return id, nil
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.ErrStatusBadRequest
	}
	return nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}
