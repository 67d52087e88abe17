package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	uc          *CatalogUseCase
	catalogRepo *fakeCatalogRepo
	cacheRepo   *fakeCacheRepo
	db          *fakeDB
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		catalogRepo: newFakeCatalogRepo(),
		cacheRepo:   newFakeCacheRepo(),
		db:          &fakeDB{},
	}
	f.uc = NewCatalogUC(f.catalogRepo, f.cacheRepo, f.db, fakeLogger{})
	return f
}

func TestGetProduct(t *testing.T) {
	f := newCatalogFixture()
	product := f.catalogRepo.addProduct(&domain.Product{
		Name:          "Куртка зимняя",
		Codes:         []string{"JKT-01"},
		OriginalPrice: 250000,
		OfferPrice:    199900,
		Colors: []domain.Variant{
			{Dimension: domain.DimensionColor, Label: "black", Quantity: 10},
		},
	})

	detail, err := f.uc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)

	assert.Equal(t, product.ID, detail.ID)
	assert.Equal(t, "Куртка зимняя", detail.Name)
	assert.Equal(t, "jackets", detail.CategoryName)
	assert.Equal(t, "menswear", detail.TypeName)
	require.Len(t, detail.Colors, 1)
	assert.Equal(t, int32(10), detail.Colors[0].Quantity)

	// Промах дозаполняет кэш в фоне
	cached := f.cacheRepo.cachedProduct(product.ID, time.Second)
	require.NotNil(t, cached)
	assert.Equal(t, detail.Name, cached.Name)
}

func TestGetProductCacheHit(t *testing.T) {
	f := newCatalogFixture()

	// Карточка есть только в кэше: попадание не ходит в БД
	require.NoError(t, f.cacheRepo.SetProduct(context.Background(), &ProductDetail{
		ID:   7,
		Name: "Из кэша",
	}))

	detail, err := f.uc.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Из кэша", detail.Name)
}

func TestGetProductNotFound(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestAppendCategoryProducts(t *testing.T) {
	f := newCatalogFixture()
	f.catalogRepo.categories["1/jackets"] = &domain.Category{ID: 11, ProductTypeID: 1, Name: "jackets"}

	res, err := f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID:       1,
		CategoryName: "jackets",
		Products: []NewProductSpec{
			{
				Name:          "Куртка зимняя",
				Codes:         []string{"JKT-01"},
				OriginalPrice: 250000,
				OfferPrice:    199900,
				BuyingPrice:   120000,
				Colors:        []VariantInfo{{Label: "black", Quantity: 10}},
				Sizes:         []VariantInfo{{Label: "M", Quantity: 5}},
			},
			{
				Name:          "Куртка демисезонная",
				OriginalPrice: 150000,
				OfferPrice:    150000,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.ProductIDs, 2)

	created, err := f.catalogRepo.GetProduct(context.Background(), res.ProductIDs[0])
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.CategoryID)
	require.Len(t, created.Colors, 1)
	assert.Equal(t, domain.DimensionColor, created.Colors[0].Dimension)

	assert.True(t, f.db.lastTx.committed)
}

func TestAppendCategoryProductsValidation(t *testing.T) {
	f := newCatalogFixture()
	f.catalogRepo.categories["1/jackets"] = &domain.Category{ID: 11, ProductTypeID: 1, Name: "jackets"}

	valid := NewProductSpec{Name: "Куртка", OriginalPrice: 1000, OfferPrice: 900}

	_, err := f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID: 1, CategoryName: "  ", Products: []NewProductSpec{valid},
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID: 1, CategoryName: "jackets",
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	// Цена по акции выше исходной
	_, err = f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID: 1, CategoryName: "jackets",
		Products: []NewProductSpec{{Name: "Куртка", OriginalPrice: 1000, OfferPrice: 1100}},
	})
	assert.ErrorIs(t, err, e.ErrOfferExceedsOriginal)

	_, err = f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID: 1, CategoryName: "jackets",
		Products: []NewProductSpec{{OriginalPrice: 1000, OfferPrice: 900}},
	})
	assert.ErrorIs(t, err, e.ErrProductNameRequired)

	_, err = f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID: 1, CategoryName: "jackets",
		Products: []NewProductSpec{{
			Name: "Куртка", OriginalPrice: 1000, OfferPrice: 900,
			Colors: []VariantInfo{{Label: "black", Quantity: -1}},
		}},
	})
	assert.ErrorIs(t, err, e.ErrNegativeQuantity)
}

func TestAppendCategoryProductsCategoryNotFound(t *testing.T) {
	f := newCatalogFixture()

	// Автосоздание категории не выполняется
	_, err := f.uc.AppendCategoryProducts(context.Background(), &AppendProductsReq{
		TypeID:       1,
		CategoryName: "unknown",
		Products:     []NewProductSpec{{Name: "Куртка", OriginalPrice: 1000, OfferPrice: 900}},
	})
	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Empty(t, f.catalogRepo.appended)
}
