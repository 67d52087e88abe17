//go:generate goverter gen github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// Варианты продукта живут в отдельной таблице и конвертируются вручную в репозитории.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:ignore Colors Sizes
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductTypeConverter преобразует сущности ProductType между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductTypeConverter interface {
	ToModel(entity *domain.ProductType) *ProductTypeModel
	ToEntity(model *ProductTypeModel) *domain.ProductType
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// Позиции заказа конвертируются вручную в репозитории.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOrderStatus ConvertOrderStatusToString
// goverter:ignore Items
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
}

// ProfitPeriodConverter преобразует сущности ProfitPeriod между domain и моделью PostgreSQL.
// Прочие расходы конвертируются вручную в репозитории.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPeriodStatus ConvertPeriodStatusToString
// goverter:ignore OtherCosts
type ProfitPeriodConverter interface {
	ToModel(entity *domain.ProfitPeriod) *ProfitPeriodModel
	ToEntity(model *ProfitPeriodModel) *domain.ProfitPeriod
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus ConvertOutboxStatusToString
// goverter:extend ConvertOutboxEventType ConvertOutboxEventTypeToString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOrderStatus(s string) domain.OrderStatus {
	return domain.OrderStatus(s)
}

func ConvertOrderStatusToString(s domain.OrderStatus) string {
	return string(s)
}

func ConvertPeriodStatus(s string) domain.PeriodStatus {
	return domain.PeriodStatus(s)
}

func ConvertPeriodStatusToString(s domain.PeriodStatus) string {
	return string(s)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxStatusToString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertOutboxEventTypeToString(t usecase.OutboxEventType) string {
	return string(t)
}
