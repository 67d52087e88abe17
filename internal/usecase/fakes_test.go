package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
)

// fakeLogger глушит логирование в тестах.
type fakeLogger struct{}

func (fakeLogger) Debugf(format string, args ...any)            {}
func (fakeLogger) Infof(format string, args ...any)             {}
func (fakeLogger) Warnf(format string, args ...any)             {}
func (fakeLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx без настоящей базы. Откат возвращает остатки
// каталога к снимку, сделанному на старте транзакции.
type fakeTx struct {
	committed  bool
	rolledBack bool
	restore    func()
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	if t.restore != nil {
		t.restore()
	}
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

// fakeDB подменяет пул соединений для transaction.NewTransaction.
type fakeDB struct {
	catalog *fakeCatalogRepo
	lastTx  *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.lastTx = &fakeTx{}
	if db.catalog != nil {
		saved := db.catalog.snapshotStocks()
		catalog := db.catalog
		db.lastTx.restore = func() { catalog.restoreStocks(saved) }
	}
	return db.lastTx, nil
}

func (db *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return db.Begin(ctx)
}

// fakeCatalogRepo хранит каталог в памяти; остатки списываются с теми же
// правилами, что и в SQL-реализации.
type fakeCatalogRepo struct {
	products   map[int64]*domain.Product
	categories map[string]*domain.Category
	appended   []*domain.Product
	nextID     int64
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products:   make(map[int64]*domain.Product),
		categories: make(map[string]*domain.Category),
		nextID:     1,
	}
}

func (f *fakeCatalogRepo) addProduct(p *domain.Product) *domain.Product {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
	return p
}

func (f *fakeCatalogRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeCatalogRepo) FindProductByID(ctx context.Context, id int64) (*ProductLocation, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return NewProductLocation(product,
		&domain.Category{ID: 1, Name: "jackets"},
		&domain.ProductType{ID: 1, Name: "menswear"},
	), nil
}

func (f *fakeCatalogRepo) CategoryByName(ctx context.Context, typeID int64, name string) (*domain.Category, error) {
	category, ok := f.categories[fmt.Sprintf("%d/%s", typeID, name)]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCatalogRepo) AppendProducts(ctx context.Context, categoryID int64, products []*domain.Product) ([]*domain.Product, error) {
	created := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		p.CategoryID = categoryID
		created = append(created, f.addProduct(p))
	}
	f.appended = append(f.appended, created...)
	return created, nil
}

func (f *fakeCatalogRepo) DecrementStock(ctx context.Context, productID int64, dim domain.VariantDimension, label string, qty int32) (bool, error) {
	product, ok := f.products[productID]
	if !ok {
		return false, nil
	}

	variants := product.Colors
	if dim == domain.DimensionSize {
		variants = product.Sizes
	}

	for i := range variants {
		if variants[i].Label != label {
			continue
		}
		if variants[i].Quantity < qty {
			return false, e.NewInsufficientStockError(productID, string(dim), label, qty, variants[i].Quantity)
		}
		variants[i].Quantity -= qty
		return true, nil
	}

	return false, nil // variant miss
}

// snapshotStocks снимает копию остатков всех вариантов.
func (f *fakeCatalogRepo) snapshotStocks() map[int64]stockState {
	saved := make(map[int64]stockState, len(f.products))
	for id, p := range f.products {
		saved[id] = stockState{
			colors: append([]domain.Variant(nil), p.Colors...),
			sizes:  append([]domain.Variant(nil), p.Sizes...),
		}
	}
	return saved
}

func (f *fakeCatalogRepo) restoreStocks(saved map[int64]stockState) {
	for id, st := range saved {
		if p, ok := f.products[id]; ok {
			p.Colors = st.colors
			p.Sizes = st.sizes
		}
	}
}

type stockState struct {
	colors []domain.Variant
	sizes  []domain.Variant
}

// variantQuantity возвращает текущий остаток для проверок в тестах.
func (f *fakeCatalogRepo) variantQuantity(productID int64, dim domain.VariantDimension, label string) int32 {
	product := f.products[productID]
	variants := product.Colors
	if dim == domain.DimensionSize {
		variants = product.Sizes
	}
	for _, v := range variants {
		if v.Label == label {
			return v.Quantity
		}
	}
	return -1
}

// fakeOrderRepo — in-memory заказы. accounted хранит закрепление заказа за
// закрытым периодом.
type fakeOrderRepo struct {
	orders    map[int64]*domain.Order
	accounted map[int64]int64
	nextID    int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[int64]*domain.Order),
		accounted: make(map[int64]int64),
		nextID:    1,
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	return f.Get(ctx, id)
}

func (f *fakeOrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) SetConfirmed(ctx context.Context, id int64) error {
	order, ok := f.orders[id]
	if !ok || order.Status != domain.OrderOpen {
		return e.ErrAlreadyConfirmed
	}
	order.Status = domain.OrderConfirmed
	return nil
}

func (f *fakeOrderRepo) SetApproved(ctx context.Context, id int64) error {
	order, ok := f.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	order.Approved = true
	return nil
}

func (f *fakeOrderRepo) SetClosed(ctx context.Context, id int64) error {
	order, ok := f.orders[id]
	if !ok || order.Status == domain.OrderClosed || !order.Approved {
		return e.ErrNotApproved
	}
	order.Status = domain.OrderClosed
	return nil
}

func (f *fakeOrderRepo) ListUnaccounted(ctx context.Context) ([]*domain.Order, error) {
	var unaccounted []*domain.Order
	for _, order := range f.orders {
		if _, taken := f.accounted[order.ID]; order.Approved && !taken {
			unaccounted = append(unaccounted, order)
		}
	}
	return unaccounted, nil
}

func (f *fakeOrderRepo) MarkAccounted(ctx context.Context, periodID int64) error {
	for _, order := range f.orders {
		if _, taken := f.accounted[order.ID]; order.Approved && !taken {
			f.accounted[order.ID] = periodID
		}
	}
	return nil
}

// fakeStoreOrderRepo — in-memory офлайн-продажи.
type fakeStoreOrderRepo struct {
	orders    map[string]*domain.StoreOrder
	accounted map[string]int64
}

func newFakeStoreOrderRepo() *fakeStoreOrderRepo {
	return &fakeStoreOrderRepo{
		orders:    make(map[string]*domain.StoreOrder),
		accounted: make(map[string]int64),
	}
}

func (f *fakeStoreOrderRepo) Create(ctx context.Context, order *domain.StoreOrder) (*domain.StoreOrder, error) {
	if _, ok := f.orders[order.ID]; ok {
		return nil, e.ErrConcurrencyConflict
	}
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeStoreOrderRepo) ListUnaccounted(ctx context.Context) ([]*domain.StoreOrder, error) {
	var unaccounted []*domain.StoreOrder
	for _, order := range f.orders {
		if _, taken := f.accounted[order.ID]; order.Approved && !taken {
			unaccounted = append(unaccounted, order)
		}
	}
	return unaccounted, nil
}

func (f *fakeStoreOrderRepo) MarkAccounted(ctx context.Context, periodID int64) error {
	for _, order := range f.orders {
		if _, taken := f.accounted[order.ID]; order.Approved && !taken {
			f.accounted[order.ID] = periodID
		}
	}
	return nil
}

// fakeProfitRepo — in-memory периоды с инвариантом единственного открытого.
type fakeProfitRepo struct {
	periods    map[int64]*domain.ProfitPeriod
	nextID     int64
	nextCostID int64
	// conflictsLeft заставляет UpdateTotals имитировать конфликт записи
	conflictsLeft int
}

func newFakeProfitRepo() *fakeProfitRepo {
	return &fakeProfitRepo{periods: make(map[int64]*domain.ProfitPeriod), nextID: 1, nextCostID: 1}
}

// GetOpenPeriod, как и SQL-реализация, отдаёт независимую копию: изменения
// возвращённого периода не видны в «базе», пока не проведены через репозиторий.
func (f *fakeProfitRepo) GetOpenPeriod(ctx context.Context) (*domain.ProfitPeriod, error) {
	for _, period := range f.periods {
		if period.Status == domain.PeriodOpen {
			return clonePeriod(period), nil
		}
	}
	return nil, e.ErrNoOpenPeriod
}

func clonePeriod(p *domain.ProfitPeriod) *domain.ProfitPeriod {
	cp := *p
	cp.Titles = append([]string(nil), p.Titles...)
	cp.OtherCosts = append([]domain.OtherCost(nil), p.OtherCosts...)
	return &cp
}

func (f *fakeProfitRepo) CreatePeriod(ctx context.Context, period *domain.ProfitPeriod) (*domain.ProfitPeriod, error) {
	for _, existing := range f.periods {
		if existing.Status == domain.PeriodOpen {
			return nil, e.ErrConcurrencyConflict
		}
	}
	period.ID = f.nextID
	f.nextID++
	f.periods[period.ID] = clonePeriod(period)
	return period, nil
}

func (f *fakeProfitRepo) UpdateTotals(ctx context.Context, periodID int64, totals *RevenueTotals, ourProfit int64) error {
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return e.ErrConcurrencyConflict
	}

	period, ok := f.periods[periodID]
	if !ok || period.Status != domain.PeriodOpen {
		return e.ErrConcurrencyConflict
	}
	period.TotalProductsSold = totals.UnitsSold
	period.TotalRevenue = totals.Revenue
	period.OurProfit = ourProfit
	return nil
}

func (f *fakeProfitRepo) ClosePeriod(ctx context.Context, periodID int64) error {
	period, ok := f.periods[periodID]
	if !ok || period.Status != domain.PeriodOpen {
		return e.ErrConcurrencyConflict
	}
	period.Status = domain.PeriodClosed
	return nil
}

func (f *fakeProfitRepo) AddCost(ctx context.Context, periodID int64, name string, amount int64) (*domain.OtherCost, error) {
	period, ok := f.periods[periodID]
	if !ok || period.Status != domain.PeriodOpen {
		return nil, e.ErrNoOpenPeriod
	}
	cost := domain.OtherCost{ID: f.nextCostID, Name: name, Amount: amount}
	f.nextCostID++
	period.OtherCosts = append(period.OtherCosts, cost)
	return &cost, nil
}

func (f *fakeProfitRepo) ListClosedPeriods(ctx context.Context) ([]*domain.ProfitPeriod, error) {
	var closed []*domain.ProfitPeriod
	for _, period := range f.periods {
		if period.Status == domain.PeriodClosed {
			closed = append(closed, clonePeriod(period))
		}
	}
	return closed, nil
}

// fakeOutboxRepo собирает поставленные в очередь события.
type fakeOutboxRepo struct {
	events []*OutboxEvent
	nextID int64
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{nextID: 1}
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = f.nextID
	f.nextID++
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	var claimed []*OutboxEvent
	for _, event := range f.events {
		if event.Status == Pending && len(claimed) < limit {
			event.Status = Processing
			claimed = append(claimed, event)
		}
	}
	return claimed, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, event := range f.events {
		if event.ID == id {
			event.Status = Processed
		}
	}
	return nil
}

// fakeCacheRepo отслеживает вызовы инвалидации. Мьютекс нужен из-за фонового
// заполнения кэша в CatalogUseCase.GetProduct.
type fakeCacheRepo struct {
	mu      sync.Mutex
	stored  map[int64]*ProductDetail
	deleted [][]int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{stored: make(map[int64]*ProductDetail)}
}

func (f *fakeCacheRepo) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[id], nil
}

func (f *fakeCacheRepo) SetProduct(ctx context.Context, product *ProductDetail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[product.ID] = product
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids)
	for _, id := range ids {
		delete(f.stored, id)
	}
	return nil
}

// deletedCalls возвращает копию журнала инвалидаций.
func (f *fakeCacheRepo) deletedCalls() [][]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]int64(nil), f.deleted...)
}

// cachedProduct возвращает закэшированную карточку, дожидаясь фоновой записи.
func (f *fakeCacheRepo) cachedProduct(id int64, wait time.Duration) *ProductDetail {
	deadline := time.Now().Add(wait)
	for {
		f.mu.Lock()
		detail := f.stored[id]
		f.mu.Unlock()
		if detail != nil || time.Now().After(deadline) {
			return detail
		}
		time.Sleep(5 * time.Millisecond)
	}
}
