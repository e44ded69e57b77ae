package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"property-estimator/domain"
	"property-estimator/service"
)

type TermComparisonHandler struct {
	service   *service.TermComparisonService
	estimates *service.EstimateService
	log       zerolog.Logger
}

func NewTermComparisonHandler(
	service *service.TermComparisonService,
	estimates *service.EstimateService,
	log zerolog.Logger,
) *TermComparisonHandler {
	return &TermComparisonHandler{service: service, estimates: estimates, log: log}
}

type termComparisonRequest struct {
	PropertyPrice     float64  `json:"property_price"`
	DepositRatioPct   float64  `json:"deposit_ratio_pct"`
	AnnualRatePct     *float64 `json:"annual_rate_pct"`
	MinTermYears      int      `json:"min_term_years"`
	MaxTermYears      int      `json:"max_term_years"`
	MaxMonthlyPayment float64  `json:"max_monthly_payment"`
	Preference        string   `json:"preference"`
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var req termComparisonRequest
	if !decodeJSON(w, r, h.log, &req) {
		return
	}

	input := domain.TermComparisonInput{
		PropertyPrice:     req.PropertyPrice,
		DepositRatioPct:   req.DepositRatioPct,
		AnnualRatePct:     h.estimates.Defaults().DefaultAnnualRatePct,
		MinTermYears:      req.MinTermYears,
		MaxTermYears:      req.MaxTermYears,
		MaxMonthlyPayment: req.MaxMonthlyPayment,
		Preference:        req.Preference,
	}
	if req.AnnualRatePct != nil {
		input.AnnualRatePct = *req.AnnualRatePct
	}

	result, err := h.service.CompareTerms(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, result)
}
