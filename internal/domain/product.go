package domain

import (
	"time"

	"github.com/nahid177/afwan-shop-sub001/pkg/e"
)

// VariantDimension — измерение варианта продукта: цвет или размер.
type VariantDimension string

const (
	DimensionColor VariantDimension = "color"
	DimensionSize  VariantDimension = "size"
)

// Variant — один вариант продукта со своим независимым остатком.
// Остатки по цветам и размерам ведутся раздельно, не как матрица цвет×размер.
type Variant struct {
	ID        int64
	Dimension VariantDimension
	Label     string
	Quantity  int32
}

// Product описывает продаваемый товар каталога
type Product struct {
	ID            int64
	CategoryID    int64
	Name          string
	Codes         []string
	OriginalPrice int64 // Цены хранятся в центах
	OfferPrice    int64
	BuyingPrice   int64 // закупочная цена, идёт в себестоимость
	Colors        []Variant
	Sizes         []Variant
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	IsArchived    bool
}

func NewProduct(name string, codes []string, originalPrice, offerPrice, buyingPrice int64) *Product {
	return &Product{
		Name:          name,
		Codes:         codes,
		OriginalPrice: originalPrice,
		OfferPrice:    offerPrice,
		BuyingPrice:   buyingPrice,
	}
}

// Validate проверяет инварианты продукта: цена по акции не выше исходной,
// остатки вариантов неотрицательны.
func (p *Product) Validate() error {
	if p.Name == "" {
		return e.ErrProductNameRequired
	}

	if p.OfferPrice > p.OriginalPrice {
		return e.ErrOfferExceedsOriginal
	}

	if p.OriginalPrice < 0 || p.OfferPrice < 0 || p.BuyingPrice < 0 {
		return e.ErrInvalidPrice
	}

	for _, v := range p.Colors {
		if v.Quantity < 0 {
			return e.ErrNegativeQuantity
		}
	}
	for _, v := range p.Sizes {
		if v.Quantity < 0 {
			return e.ErrNegativeQuantity
		}
	}

	return nil
}

// FindVariant ищет вариант по измерению и метке.
// Отсутствие варианта не является ошибкой само по себе (см. политику списания).
func (p *Product) FindVariant(dim VariantDimension, label string) (*Variant, bool) {
	variants := p.Colors
	if dim == DimensionSize {
		variants = p.Sizes
	}

	for i := range variants {
		if variants[i].Label == label {
			return &variants[i], true
		}
	}

	return nil, false
}
