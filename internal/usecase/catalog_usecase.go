package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// CatalogUseCase реализует бизнес-логику каталога товаров.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCatalogUC(
	catalogRepo CatalogRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// GetProduct возвращает карточку продукта, используя кэш со сквозным чтением.
// Промахи и сбои кэша не фатальны: ответ собирается из БД, кэш дозаполняется в фоне.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		c.logger.Warnf("Cache lookup failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	location, err := c.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	detail := NewProductDetail(location.Product, location.Category.Name, location.Type.Name)

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProduct(bgCtx, detail); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return detail, nil
}

// AppendCategoryProducts добавляет продукты в существующую категорию.
// Отсутствующая категория — жёсткая ошибка, автосоздание не выполняется.
func (c *CatalogUseCase) AppendCategoryProducts(ctx context.Context, req *AppendProductsReq) (*AppendProductsRes, error) {
	const op = "CatalogUseCase.AppendCategoryProducts"

	products, err := c.validateProducts(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.catalogRepo.CategoryByName(ctx, req.TypeID, req.CategoryName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	created, err := c.catalogRepo.AppendProducts(ctx, category.ID, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	ids := make([]int64, 0, len(created))
	for _, p := range created {
		ids = append(ids, p.ID)
	}

	return &AppendProductsRes{ProductIDs: ids}, nil
}

// validateProducts проверяет входные данные и собирает доменные продукты.
func (c *CatalogUseCase) validateProducts(req *AppendProductsReq) ([]*domain.Product, error) {
	if strings.TrimSpace(req.CategoryName) == "" {
		return nil, e.ErrMissingFields
	}

	if len(req.Products) == 0 {
		return nil, e.ErrMissingFields
	}

	products := make([]*domain.Product, 0, len(req.Products))
	for _, spec := range req.Products {
		product := domain.NewProduct(spec.Name, spec.Codes, spec.OriginalPrice, spec.OfferPrice, spec.BuyingPrice)
		product.Colors = toVariants(domain.DimensionColor, spec.Colors)
		product.Sizes = toVariants(domain.DimensionSize, spec.Sizes)

		if err := product.Validate(); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, nil
}

func toVariants(dim domain.VariantDimension, infos []VariantInfo) []domain.Variant {
	variants := make([]domain.Variant, 0, len(infos))
	for _, info := range infos {
		variants = append(variants, domain.Variant{
			Dimension: dim,
			Label:     info.Label,
			Quantity:  info.Quantity,
		})
	}
	return variants
}
