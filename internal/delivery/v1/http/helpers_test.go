package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"599.99", 59999},
		{"600", 60000},
		{"600.5", 60050},
		{"0", 0},
		{"0.01", 1},
	}
	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parsePriceToCents("")
	assert.Error(t, err)

	_, err = parsePriceToCents("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("-1")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("599.999")
	assert.ErrorIs(t, err, e.ErrPricePrecision)
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrMissingFields, http.StatusBadRequest},
		{e.ErrNoOrderItems, http.StatusBadRequest},
		{e.ErrOfferExceedsOriginal, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrNoOpenPeriod, http.StatusNotFound},
		{e.ErrAlreadyConfirmed, http.StatusConflict},
		{e.ErrNotApproved, http.StatusConflict},
		{e.ErrConcurrencyConflict, http.StatusConflict},
		{fmt.Errorf("pgx: broken pipe"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, msg := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.NotEmpty(t, msg)
	}

	// Обёртки usecase не снимают сопоставление
	code, _ := ToHTTPResponse(e.Wrap("OrderUseCase.ConfirmOrder", e.ErrAlreadyConfirmed))
	assert.Equal(t, http.StatusConflict, code)

	// Внутренние детали наружу не уходят
	_, msg := ToHTTPResponse(fmt.Errorf("pgx: connection refused"))
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestToHTTPResponseInsufficientStock(t *testing.T) {
	stockErr := e.NewInsufficientStockError(42, "color", "black", 5, 2)

	code, msg := ToHTTPResponse(fmt.Errorf("item 0: %w", stockErr))
	assert.Equal(t, http.StatusConflict, code)
	// Клиент видит, какой позиции и сколько не хватило
	assert.Contains(t, msg, "product 42")
	assert.Contains(t, msg, "requested 5")
	assert.Contains(t, msg, "available 2")

	// Без типизированных деталей остаётся общий текст
	code, msg = ToHTTPResponse(e.ErrInsufficientStock)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, e.ErrInsufficientStock.Error(), msg)
}
