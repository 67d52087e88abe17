package http

import (
	"net/http"
	"time"

	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
)

type ProfitHandler struct {
	profitUsecase usecase.ProfitUC
	logger        logger.Logger
}

func NewProfitHandler(profitUsecase usecase.ProfitUC, logger logger.Logger) *ProfitHandler {
	return &ProfitHandler{profitUsecase: profitUsecase, logger: logger}
}

type otherCostBody struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type costResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type periodResponse struct {
	PeriodID          int64          `json:"period_id"`
	TotalProductsSold int64          `json:"total_products_sold"`
	TotalRevenue      int64          `json:"total_revenue"`
	OurProfit         int64          `json:"our_profit"`
	OtherCosts        []costResponse `json:"other_costs"`
	Titles            []string       `json:"titles"`
	Status            string         `json:"status"`
	ClosedAt          *time.Time     `json:"closed_at,omitempty"`
}

// recalculateProfit
//
//	@Summary		Пересчёт прибыли
//	@Description	Пересчитывает итоги открытого периода с нуля по одобренным продажам
//	@Tags			profit
//	@Produce		json
//	@Success		200	{object}	periodResponse
//	@Router			/profit/recalculate [post]
func (h *ProfitHandler) recalculateProfit(w http.ResponseWriter, r *http.Request) {
	summary, err := h.profitUsecase.RecalculateProfit(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPeriodResponse(summary))
}

// closeProfitPeriod
//
//	@Summary		Закрытие учётного периода
//	@Description	Финализирует итоги, закрывает период и открывает следующий с теми же прочими расходами
//	@Tags			profit
//	@Produce		json
//	@Success		200	{object}	periodResponse	"Закрытый период"
//	@Failure		404	{object}	ErrorResponse	"Нет открытого периода"
//	@Router			/profit/close [post]
func (h *ProfitHandler) closeProfitPeriod(w http.ResponseWriter, r *http.Request) {
	summary, err := h.profitUsecase.CloseProfitPeriod(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPeriodResponse(summary))
}

// addOtherCost
//
//	@Summary		Добавление прочего расхода
//	@Description	Добавляет расход в открытый период; итоги актуализируются следующим пересчётом
//	@Tags			profit
//	@Accept			json
//	@Produce		json
//	@Param			request	body		otherCostBody	true	"Название и сумма"
//	@Success		200		{object}	periodResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Нет открытого периода"
//	@Router			/profit/costs [post]
func (h *ProfitHandler) addOtherCost(w http.ResponseWriter, r *http.Request) {
	var body otherCostBody
	if err := decodeJSONBody(r, &body); err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	amount, err := parsePriceToCents(body.Amount)
	if err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	summary, err := h.profitUsecase.AddOtherCost(r.Context(), &usecase.AddOtherCostReq{
		Name:   body.Name,
		Amount: amount,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPeriodResponse(summary))
}

// getProfitHistory
//
//	@Summary		История периодов
//	@Description	Возвращает закрытые периоды, новые первыми
//	@Tags			profit
//	@Produce		json
//	@Success		200	{array}	periodResponse
//	@Router			/profit/history [get]
func (h *ProfitHandler) getProfitHistory(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.profitUsecase.GetProfitHistory(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	responses := make([]periodResponse, 0, len(summaries))
	for i := range summaries {
		responses = append(responses, *toPeriodResponse(&summaries[i]))
	}

	WriteSuccess(w, http.StatusOK, responses)
}

func toPeriodResponse(summary *usecase.PeriodSummary) *periodResponse {
	costs := make([]costResponse, 0, len(summary.OtherCosts))
	for _, cost := range summary.OtherCosts {
		costs = append(costs, costResponse{Name: cost.Name, Amount: cost.Amount})
	}

	return &periodResponse{
		PeriodID:          summary.PeriodID,
		TotalProductsSold: summary.TotalProductsSold,
		TotalRevenue:      summary.TotalRevenue,
		OurProfit:         summary.OurProfit,
		OtherCosts:        costs,
		Titles:            summary.Titles,
		Status:            string(summary.Status),
		ClosedAt:          summary.ClosedAt,
	}
}
