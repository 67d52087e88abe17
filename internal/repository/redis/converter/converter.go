//go:generate goverter gen github.com/nahid177/afwan-shop-sub001/internal/repository/redis/converter

package converter

import (
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
)

// goverter:converter
type ProductDetailConverter interface {
	ToRedisModel(entity *usecase.ProductDetail) *ProductDetailRedisModel
	ToUseCase(model *ProductDetailRedisModel) *usecase.ProductDetail
}
