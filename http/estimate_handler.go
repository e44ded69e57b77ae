package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"property-estimator/domain"
	"property-estimator/service"
)

type EstimateHandler struct {
	service *service.EstimateService
	log     zerolog.Logger
}

func NewEstimateHandler(service *service.EstimateService, log zerolog.Logger) *EstimateHandler {
	return &EstimateHandler{service: service, log: log}
}

// Omitted rates and terms fall back to the configured widget defaults.
type appreciationRequest struct {
	PurchasePrice         float64  `json:"purchase_price"`
	HoldingPeriodYears    int      `json:"holding_period_years"`
	AnnualAppreciationPct *float64 `json:"annual_appreciation_pct"`
}

type mortgageRequest struct {
	PropertyPrice   float64  `json:"property_price"`
	DepositRatioPct float64  `json:"deposit_ratio_pct"`
	AnnualRatePct   *float64 `json:"annual_rate_pct"`
	TermYears       *int     `json:"term_years"`
}

type scheduleResponse struct {
	Years []domain.AmortizationYear `json:"years"`
}

func (h *EstimateHandler) Appreciation(w http.ResponseWriter, r *http.Request) {
	var req appreciationRequest
	if !decodeJSON(w, r, h.log, &req) {
		return
	}

	input := domain.AppreciationInput{
		PurchasePrice:         req.PurchasePrice,
		HoldingPeriodYears:    req.HoldingPeriodYears,
		AnnualAppreciationPct: h.service.Defaults().DefaultAppreciationPct,
	}
	if req.AnnualAppreciationPct != nil {
		input.AnnualAppreciationPct = *req.AnnualAppreciationPct
	}

	result, err := h.service.Appreciation(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, result)
}

func (h *EstimateHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeMortgage(w, r)
	if !ok {
		return
	}

	result, err := h.service.Mortgage(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, result)
}

func (h *EstimateHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeMortgage(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Schedule(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, scheduleResponse{Years: rows})
}

func (h *EstimateHandler) decodeMortgage(w http.ResponseWriter, r *http.Request) (domain.MortgageInput, bool) {
	var req mortgageRequest
	if !decodeJSON(w, r, h.log, &req) {
		return domain.MortgageInput{}, false
	}

	defaults := h.service.Defaults()
	input := domain.MortgageInput{
		PropertyPrice:   req.PropertyPrice,
		DepositRatioPct: req.DepositRatioPct,
		AnnualRatePct:   defaults.DefaultAnnualRatePct,
		TermYears:       defaults.DefaultTermYears,
	}
	if req.AnnualRatePct != nil {
		input.AnnualRatePct = *req.AnnualRatePct
	}
	if req.TermYears != nil {
		input.TermYears = *req.TermYears
	}
	return input, true
}
