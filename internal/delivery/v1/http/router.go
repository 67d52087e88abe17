package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/nahid177/afwan-shop-sub001/docs" // Импорт сгенерированных файлов
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, orderUC usecase.OrderUC, profitUC usecase.ProfitUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerProfitRoutes(v1, NewProfitHandler(profitUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/{id}", h.getProduct)
	})
	router.Post("/catalog/types/{typeID}/categories/{category}/products", h.appendCategoryProducts)
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.createOrder)
		or.Post("/{id}/confirm", h.confirmOrder)
		or.Post("/{id}/approve", h.approveOrder)
		or.Post("/{id}/close", h.closeOrder)
	})
	router.Post("/store-orders", h.createStoreOrder)
}

func registerProfitRoutes(router chi.Router, h *ProfitHandler) {
	router.Route("/profit", func(pf chi.Router) {
		pf.Post("/recalculate", h.recalculateProfit)
		pf.Post("/close", h.closeProfitPeriod)
		pf.Post("/costs", h.addOtherCost)
		pf.Get("/history", h.getProfitHistory)
	})
}
