package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb/converter"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// CatalogRepo реализует репозиторий каталога поверх PostgreSQL.
// Продукты адресуются стабильным ID, типы и категории — индексные таблицы,
// остаток каждого варианта — отдельная строка: списание затрагивает одну
// запись вместо перезаписи вложенного дерева.
type CatalogRepo struct {
	pool     *pgxpool.Pool
	conv     converter.ProductConverter
	catConv  converter.CategoryConverter
	typeConv converter.ProductTypeConverter
}

func NewCatalogRepo(
	pool *pgxpool.Pool,
	conv converter.ProductConverter,
	catConv converter.CategoryConverter,
	typeConv converter.ProductTypeConverter,
) *CatalogRepo {
	return &CatalogRepo{
		pool:     pool,
		conv:     conv,
		catConv:  catConv,
		typeConv: typeConv,
	}
}

// GetProduct возвращает продукт с вариантами.
func (c *CatalogRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	q := pick(ctx, c.pool)

	query := `
		SELECT id, category_id, name, codes, original_price, offer_price, buying_price,
		       created_at, updated_at, is_archived
		FROM products
		WHERE id = $1 AND NOT is_archived
	`

	var model converter.ProductModel
	err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.CategoryID, &model.Name, &model.Codes,
		&model.OriginalPrice, &model.OfferPrice, &model.BuyingPrice,
		&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := c.conv.ToEntity(&model)
	if err := c.loadVariants(ctx, q, product); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// FindProductByID возвращает продукт вместе с владеющей категорией и типом.
func (c *CatalogRepo) FindProductByID(ctx context.Context, id int64) (*usecase.ProductLocation, error) {
	q := pick(ctx, c.pool)

	query := `
		SELECT pr.id, pr.category_id, pr.name, pr.codes, pr.original_price, pr.offer_price,
		       pr.buying_price, pr.created_at, pr.updated_at, pr.is_archived,
		       cat.id, cat.product_type_id, cat.name, cat.created_at, cat.updated_at,
		       pt.id, pt.name, pt.created_at, pt.updated_at
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		JOIN product_types pt ON cat.product_type_id = pt.id
		WHERE pr.id = $1 AND NOT pr.is_archived
	`

	var (
		prModel   converter.ProductModel
		catModel  converter.CategoryModel
		typeModel converter.ProductTypeModel
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&prModel.ID, &prModel.CategoryID, &prModel.Name, &prModel.Codes,
		&prModel.OriginalPrice, &prModel.OfferPrice, &prModel.BuyingPrice,
		&prModel.CreatedAt, &prModel.UpdatedAt, &prModel.IsArchived,
		&catModel.ID, &catModel.ProductTypeID, &catModel.Name, &catModel.CreatedAt, &catModel.UpdatedAt,
		&typeModel.ID, &typeModel.Name, &typeModel.CreatedAt, &typeModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := c.conv.ToEntity(&prModel)
	if err := c.loadVariants(ctx, q, product); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewProductLocation(product, c.catConv.ToEntity(&catModel), c.typeConv.ToEntity(&typeModel)), nil
}

// CategoryByName ищет категорию по типу и имени.
func (c *CatalogRepo) CategoryByName(ctx context.Context, typeID int64, name string) (*domain.Category, error) {
	q := pick(ctx, c.pool)

	query := `
		SELECT id, product_type_id, name, created_at, updated_at
		FROM categories
		WHERE product_type_id = $1 AND name = $2
	`

	var model converter.CategoryModel
	err := q.QueryRow(ctx, query, typeID, name).Scan(
		&model.ID, &model.ProductTypeID, &model.Name, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.catConv.ToEntity(&model), nil
}

// AppendProducts добавляет продукты с вариантами в категорию в рамках транзакции.
func (c *CatalogRepo) AppendProducts(ctx context.Context, categoryID int64, products []*domain.Product) ([]*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productQuery := `
		INSERT INTO products (category_id, name, codes, original_price, offer_price, buying_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	variantQuery := `
		INSERT INTO product_variants (product_id, dimension, label, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		inserted := *product
		inserted.CategoryID = categoryID

		err := tx.QueryRow(ctx, productQuery,
			categoryID, product.Name, product.Codes,
			product.OriginalPrice, product.OfferPrice, product.BuyingPrice,
		).Scan(&inserted.ID, &inserted.CreatedAt)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		for i := range inserted.Colors {
			v := &inserted.Colors[i]
			if err := tx.QueryRow(ctx, variantQuery, inserted.ID, string(v.Dimension), v.Label, v.Quantity).Scan(&v.ID); err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}
		}
		for i := range inserted.Sizes {
			v := &inserted.Sizes[i]
			if err := tx.QueryRow(ctx, variantQuery, inserted.ID, string(v.Dimension), v.Label, v.Quantity).Scan(&v.ID); err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}
		}

		created = append(created, &inserted)
	}

	return created, nil
}

// DecrementStock атомарно списывает qty с варианта условным обновлением:
// строка меняется только если остатка хватает, поэтому конкурентные списания
// одного варианта сериализуются на уровне БД и остаток не уходит в минус.
func (c *CatalogRepo) DecrementStock(ctx context.Context, productID int64, dim domain.VariantDimension, label string, qty int32) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE product_variants
		SET quantity = quantity - $1
		WHERE product_id = $2 AND dimension = $3 AND label = $4 AND quantity >= $1
	`

	cmd, err := tx.Exec(ctx, query, qty, productID, string(dim), label)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() > 0 {
		return true, nil
	}

	// Либо варианта с такой меткой нет (пропуск), либо остатка не хватает
	var available int32
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM product_variants WHERE product_id = $1 AND dimension = $2 AND label = $3`,
		productID, string(dim), label,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return false, e.NewInsufficientStockError(productID, string(dim), label, qty, available)
}

// loadVariants дочитывает варианты продукта из product_variants.
func (c *CatalogRepo) loadVariants(ctx context.Context, q querier, product *domain.Product) error {
	query := `
		SELECT id, dimension, label, quantity
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, product.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v   domain.Variant
			dim string
		)
		if err := rows.Scan(&v.ID, &dim, &v.Label, &v.Quantity); err != nil {
			return err
		}
		v.Dimension = domain.VariantDimension(dim)

		switch v.Dimension {
		case domain.DimensionColor:
			product.Colors = append(product.Colors, v)
		case domain.DimensionSize:
			product.Sizes = append(product.Sizes, v)
		}
	}

	return rows.Err()
}
