package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type variantBody struct {
	Label    string `json:"label"`
	Quantity int32  `json:"quantity"`
}

type newProductBody struct {
	Name          string        `json:"name"`
	Codes         []string      `json:"codes"`
	OriginalPrice string        `json:"original_price"`
	OfferPrice    string        `json:"offer_price"`
	BuyingPrice   string        `json:"buying_price"`
	Colors        []variantBody `json:"colors"`
	Sizes         []variantBody `json:"sizes"`
}

type appendProductsBody struct {
	Products []newProductBody `json:"products"`
}

type productResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	CategoryName  string        `json:"category_name"`
	TypeName      string        `json:"type_name"`
	Codes         []string      `json:"codes"`
	OriginalPrice int64         `json:"original_price"`
	OfferPrice    int64         `json:"offer_price"`
	Colors        []variantBody `json:"colors"`
	Sizes         []variantBody `json:"sizes"`
}

// getProduct
//
//	@Summary		Карточка продукта
//	@Description	Возвращает продукт с остатками по цветам и размерам
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"ID продукта"
//	@Success		200	{object}	productResponse
//	@Failure		404	{object}	ErrorResponse	"Продукт не найден"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), chi.URLParam(r, "id"))
		WriteError(w, err)
		return
	}

	detail, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(detail))
}

// appendCategoryProducts
//
//	@Summary		Пополнение категории
//	@Description	Добавляет новые продукты в существующую категорию
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			typeID		path		int					true	"ID типа продукта"
//	@Param			category	path		string				true	"Название категории"
//	@Param			request		body		appendProductsBody	true	"Новые продукты"
//	@Success		201			{object}	map[string]interface{}	"Созданные продукты"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404			{object}	ErrorResponse	"Категория не найдена"
//	@Router			/catalog/types/{typeID}/categories/{category}/products [post]
func (h *CatalogHandler) appendCategoryProducts(w http.ResponseWriter, r *http.Request) {
	typeID, err := parseIDParam(r, "typeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	category := chi.URLParam(r, "category")
	if category == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	var body appendProductsBody
	if err := decodeJSONBody(r, &body); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req, err := toAppendProductsReq(typeID, category, body)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.AppendCategoryProducts(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"ProductIDs": res.ProductIDs,
	})
}

func toAppendProductsReq(typeID int64, category string, body appendProductsBody) (*usecase.AppendProductsReq, error) {
	specs := make([]usecase.NewProductSpec, 0, len(body.Products))
	for _, p := range body.Products {
		originalPrice, err := parsePriceToCents(p.OriginalPrice)
		if err != nil {
			return nil, err
		}
		offerPrice, err := parsePriceToCents(p.OfferPrice)
		if err != nil {
			return nil, err
		}
		buyingPrice, err := parsePriceToCents(p.BuyingPrice)
		if err != nil {
			return nil, err
		}

		specs = append(specs, usecase.NewProductSpec{
			Name:          p.Name,
			Codes:         p.Codes,
			OriginalPrice: originalPrice,
			OfferPrice:    offerPrice,
			BuyingPrice:   buyingPrice,
			Colors:        toVariantInfos(p.Colors),
			Sizes:         toVariantInfos(p.Sizes),
		})
	}

	return &usecase.AppendProductsReq{
		TypeID:       typeID,
		CategoryName: category,
		Products:     specs,
	}, nil
}

func toVariantInfos(variants []variantBody) []usecase.VariantInfo {
	infos := make([]usecase.VariantInfo, 0, len(variants))
	for _, v := range variants {
		infos = append(infos, usecase.VariantInfo{Label: v.Label, Quantity: v.Quantity})
	}
	return infos
}

func toVariantBodies(infos []usecase.VariantInfo) []variantBody {
	bodies := make([]variantBody, 0, len(infos))
	for _, v := range infos {
		bodies = append(bodies, variantBody{Label: v.Label, Quantity: v.Quantity})
	}
	return bodies
}

func toProductResponse(detail *usecase.ProductDetail) *productResponse {
	return &productResponse{
		ID:            detail.ID,
		Name:          detail.Name,
		CategoryName:  detail.CategoryName,
		TypeName:      detail.TypeName,
		Codes:         detail.Codes,
		OriginalPrice: detail.OriginalPrice,
		OfferPrice:    detail.OfferPrice,
		Colors:        toVariantBodies(detail.Colors),
		Sizes:         toVariantBodies(detail.Sizes),
	}
}
