package usecase

import "context"

type CatalogUC interface {
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
	AppendCategoryProducts(ctx context.Context, req *AppendProductsReq) (*AppendProductsRes, error)
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*OrderRes, error)
	ConfirmOrder(ctx context.Context, orderID int64) (*OrderRes, error)
	ApproveOrder(ctx context.Context, orderID int64) error
	CloseOrder(ctx context.Context, orderID int64) error
	CreateStoreOrder(ctx context.Context, req *CreateStoreOrderReq) (*StoreOrderRes, error)
}

type ProfitUC interface {
	RecalculateProfit(ctx context.Context) (*PeriodSummary, error)
	CloseProfitPeriod(ctx context.Context) (*PeriodSummary, error)
	AddOtherCost(ctx context.Context, req *AddOtherCostReq) (*PeriodSummary, error)
	GetProfitHistory(ctx context.Context) ([]PeriodSummary, error)
}
