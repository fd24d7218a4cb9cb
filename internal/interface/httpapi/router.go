package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"yieldboard/pkg/logger"
	"yieldboard/pkg/metrics"
)

// NewRouter creates and configures the HTTP router.
// API routes are registered on the root router with full paths so a method
// mismatch on one route is reported as 405 instead of being masked by later routes.
func NewRouter(h *Handler, log logger.Logger, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Use(corsMiddleware)
	r.Use(observabilityMiddleware(log, m))

	get := func(path string, fn http.HandlerFunc) {
		r.HandleFunc(path, fn).Methods(http.MethodGet, http.MethodOptions)
	}

	// Products
	get("/api/products", h.GetProducts)
	get("/api/products/{id}", h.GetProduct)
	get("/api/products/{id}/versions", h.GetProductVersions)

	// Pricing
	get("/api/pricing/versions", h.GetPricingVersions)
	r.HandleFunc("/api/pricing/snapshot", h.CreatePriceSnapshot).Methods(http.MethodPost, http.MethodOptions)

	// Analytics
	get("/api/analytics/margins", h.GetMarginAnalytics)
	get("/api/analytics/trends", h.GetTrends)
	get("/api/analytics/outliers", h.GetOutliers)
	get("/api/analytics/recent-changes", h.GetRecentChanges)

	// Forecast; patterns must be registered before the catch-all product route
	get("/api/forecast/patterns/{productId}", h.GetHistoricalPatterns)
	get("/api/forecast/{productId}", h.GetForecast)

	// Departures; fixed segments before /departures/{id}
	get("/api/departures", h.GetDepartures)
	get("/api/departures/summary", h.GetDepartureSummary)
	get("/api/departures/inventory/{productId}", h.GetSeasonalInventory)
	get("/api/departures/product/{productId}", h.GetProductDepartures)
	get("/api/departures/season/{productId}/{season}", h.GetSeasonDepartures)
	get("/api/departures/{id}/recommendation", h.GetRecommendation)
	get("/api/departures/{id}", h.GetDeparture)

	// Health check and metrics
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}

	return r
}
