package http

import (
	"net/http"

	"github.com/rs/zerolog"
	g "maragu.dev/gomponents"

	"property-estimator/domain"
	"property-estimator/service"
	"property-estimator/view"
)

// WidgetHandler serves the calculator widgets. Each slider change submits the
// form, so every request re-runs the estimator against the new state.
type WidgetHandler struct {
	service *service.EstimateService
	log     zerolog.Logger
}

func NewWidgetHandler(service *service.EstimateService, log zerolog.Logger) *WidgetHandler {
	return &WidgetHandler{service: service, log: log}
}

func (h *WidgetHandler) ROI(w http.ResponseWriter, r *http.Request) {
	state := view.ParseROICalculatorState(r.URL.Query())

	var notice g.Node
	result, err := h.service.Appreciation(r.Context(), domain.AppreciationInput{
		PurchasePrice:         state.PurchasePrice,
		HoldingPeriodYears:    state.HoldingPeriodYears,
		AnnualAppreciationPct: h.service.Defaults().DefaultAppreciationPct,
	})
	resultPtr := &result
	if err != nil {
		h.log.Warn().Err(err).Msg("roi widget estimate rejected")
		notice = view.ErrorNotice("This estimate is unavailable for the selected values.")
		resultPtr = nil
	}

	h.render(w, view.Page("ROI Calculator", view.ROICalculator(state, resultPtr, notice)))
}

func (h *WidgetHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	state := view.ParseMortgageEstimatorState(r.URL.Query())
	defaults := h.service.Defaults()

	var notice g.Node
	result, err := h.service.Mortgage(r.Context(), domain.MortgageInput{
		PropertyPrice:   state.PropertyPrice,
		DepositRatioPct: state.DepositRatioPct,
		AnnualRatePct:   defaults.DefaultAnnualRatePct,
		TermYears:       defaults.DefaultTermYears,
	})
	resultPtr := &result
	if err != nil {
		h.log.Warn().Err(err).Msg("mortgage widget estimate rejected")
		notice = view.ErrorNotice("This estimate is unavailable for the selected values.")
		resultPtr = nil
	}

	h.render(w, view.Page("Mortgage Estimator", view.MortgageEstimator(state, defaults, resultPtr, notice)))
}

func (h *WidgetHandler) render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.log.Warn().Err(err).Msg("failed to render widget")
	}
}
