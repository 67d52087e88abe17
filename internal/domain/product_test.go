package domain

import (
	"testing"

	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() *Product {
	p := NewProduct("Куртка", []string{"JKT-01"}, 250000, 199900, 120000)
	p.Colors = []Variant{
		{Dimension: DimensionColor, Label: "black", Quantity: 10},
		{Dimension: DimensionColor, Label: "red", Quantity: 0},
	}
	p.Sizes = []Variant{
		{Dimension: DimensionSize, Label: "M", Quantity: 5},
	}
	return p
}

func TestProductValidate(t *testing.T) {
	require.NoError(t, validProduct().Validate())

	p := validProduct()
	p.Name = ""
	assert.ErrorIs(t, p.Validate(), e.ErrProductNameRequired)

	p = validProduct()
	p.OfferPrice = p.OriginalPrice + 1
	assert.ErrorIs(t, p.Validate(), e.ErrOfferExceedsOriginal)

	p = validProduct()
	p.BuyingPrice = -1
	assert.ErrorIs(t, p.Validate(), e.ErrInvalidPrice)

	p = validProduct()
	p.Sizes[0].Quantity = -1
	assert.ErrorIs(t, p.Validate(), e.ErrNegativeQuantity)
}

func TestProductValidateDoesNotMutateVariants(t *testing.T) {
	// Colors с запасом ёмкости: хвост массива делят другие варианты
	backing := make([]Variant, 2, 3)
	backing[0] = Variant{Dimension: DimensionColor, Label: "black", Quantity: 10}
	backing[1] = Variant{Dimension: DimensionColor, Label: "red", Quantity: 2}

	p := validProduct()
	p.Colors = backing[:1]
	p.Sizes = []Variant{{Dimension: DimensionSize, Label: "M", Quantity: 5}}

	require.NoError(t, p.Validate())

	assert.Equal(t, "red", backing[1].Label)
	assert.Equal(t, int32(2), backing[1].Quantity)
}

func TestProductFindVariant(t *testing.T) {
	p := validProduct()

	v, ok := p.FindVariant(DimensionColor, "black")
	require.True(t, ok)
	assert.Equal(t, int32(10), v.Quantity)

	v, ok = p.FindVariant(DimensionSize, "M")
	require.True(t, ok)
	assert.Equal(t, int32(5), v.Quantity)

	// Метки общие только внутри своего измерения
	_, ok = p.FindVariant(DimensionSize, "black")
	assert.False(t, ok)

	_, ok = p.FindVariant(DimensionColor, "green")
	assert.False(t, ok)
}

func TestProfitPeriodOtherCostsTotal(t *testing.T) {
	period := NewProfitPeriod([]string{"сентябрь"}, []OtherCost{
		{Name: "аренда", Amount: 30000},
		{Name: "доставка", Amount: 4500},
	})

	assert.Equal(t, PeriodOpen, period.Status)
	assert.Equal(t, int64(34500), period.OtherCostsTotal())

	empty := NewProfitPeriod(nil, nil)
	assert.Zero(t, empty.OtherCostsTotal())
}
