package usecase

import (
	"context"

	"github.com/nahid177/afwan-shop-sub001/internal/domain"
)

type CatalogRepository interface {
	// GetProduct возвращает продукт с вариантами. e.ErrProductNotFound, если
	// продукт отсутствует или заархивирован.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// FindProductByID возвращает продукт вместе с владеющей категорией и типом.
	FindProductByID(ctx context.Context, id int64) (*ProductLocation, error)
	// CategoryByName ищет категорию по типу и имени. e.ErrCategoryNotFound, если
	// категории нет — автосоздание не выполняется.
	CategoryByName(ctx context.Context, typeID int64, name string) (*domain.Category, error)
	// AppendProducts добавляет продукты с вариантами в существующую категорию.
	AppendProducts(ctx context.Context, categoryID int64, products []*domain.Product) ([]*domain.Product, error)
	// DecrementStock атомарно списывает qty с варианта, только если остатка хватает.
	// Возвращает false без ошибки, если вариант с такой меткой не заведён (политика
	// пропуска), и *e.InsufficientStockError при нехватке остатка.
	DecrementStock(ctx context.Context, productID int64, dim domain.VariantDimension, label string, qty int32) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetForUpdate читает заказ с блокировкой строки в рамках текущей транзакции.
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	SetConfirmed(ctx context.Context, id int64) error
	SetApproved(ctx context.Context, id int64) error
	SetClosed(ctx context.Context, id int64) error
	// ListUnaccounted возвращает одобренные заказы, выручка которых ещё не
	// закреплена ни за одним закрытым периодом.
	ListUnaccounted(ctx context.Context) ([]*domain.Order, error)
	// MarkAccounted закрепляет все неучтённые одобренные заказы за периодом.
	// Вызывается в транзакции закрытия периода: закрытый период забирает свою
	// выручку с собой, и следующий период начинается с нуля.
	MarkAccounted(ctx context.Context, periodID int64) error
}

type StoreOrderRepository interface {
	Create(ctx context.Context, order *domain.StoreOrder) (*domain.StoreOrder, error)
	ListUnaccounted(ctx context.Context) ([]*domain.StoreOrder, error)
	MarkAccounted(ctx context.Context, periodID int64) error
}

type ProfitRepository interface {
	// GetOpenPeriod возвращает единственный открытый период. e.ErrNoOpenPeriod, если
	// открытого периода нет.
	GetOpenPeriod(ctx context.Context) (*domain.ProfitPeriod, error)
	CreatePeriod(ctx context.Context, period *domain.ProfitPeriod) (*domain.ProfitPeriod, error)
	UpdateTotals(ctx context.Context, periodID int64, totals *RevenueTotals, ourProfit int64) error
	ClosePeriod(ctx context.Context, periodID int64) error
	AddCost(ctx context.Context, periodID int64, name string, amount int64) (*domain.OtherCost, error)
	ListClosedPeriods(ctx context.Context) ([]*domain.ProfitPeriod, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	// GetProduct возвращает закэшированную карточку продукта или nil при промахе.
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
	SetProduct(ctx context.Context, product *ProductDetail) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
