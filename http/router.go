package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"insurance-agent/metrics"
)

type Handlers struct {
	VehicleValue *VehicleValueHandler
	RiskRating   *RiskRatingHandler
	Discount     *DiscountHandler
}

// NewRouter mounts the API under /api/v1 and keeps the original /route1,
// /route2 and /discount paths working.
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("insurance_agent")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		RequestID,
		RequestLogger(logger),
		Recoverer,
	)

	router.Get("/", Root)
	router.Get("/healthz", Healthz)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/vehicle-value", h.VehicleValue.SuggestValue)
		r.Post("/risk-rating", h.RiskRating.RateClaimHistory)
		r.Post("/discount", h.Discount.CalculateDiscount)
	})

	router.Route("/route1", func(r chi.Router) {
		r.Get("/", confirm("Route #1 hit!"))
		r.Post("/", h.VehicleValue.SuggestValue)
	})
	router.Route("/route2", func(r chi.Router) {
		r.Get("/", confirm("Route #2 hit!"))
		r.Post("/api/v1/risk-rating", h.RiskRating.RateClaimHistory)
	})
	router.Post("/discount", h.Discount.CalculateDiscount)

	return router
}
