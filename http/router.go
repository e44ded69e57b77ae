package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"property-estimator/service"
	"property-estimator/view"
)

func NewRouter(
	estimates *service.EstimateService,
	terms *service.TermComparisonService,
	limiter *RateLimiter,
	log zerolog.Logger,
) http.Handler {
	estimateHandler := NewEstimateHandler(estimates, log)
	termHandler := NewTermComparisonHandler(terms, estimates, log)
	widgetHandler := NewWidgetHandler(estimates, log)

	r := chi.NewRouter()
	// No RealIP: the rate limiter keys on RemoteAddr, which forwarded
	// headers must not be able to rewrite.
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/estimate", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))
		r.Post("/appreciation", estimateHandler.Appreciation)
		r.Post("/mortgage", estimateHandler.Mortgage)
		r.Post("/mortgage/schedule", estimateHandler.Schedule)
		r.Post("/mortgage/terms", termHandler.CompareTerms)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))
	r.Get("/widgets/roi", widgetHandler.ROI)
	r.Get("/widgets/mortgage", widgetHandler.Mortgage)

	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
