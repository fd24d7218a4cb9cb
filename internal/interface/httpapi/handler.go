package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/internal/usecase"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/metrics"
	"yieldboard/pkg/utils"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	store     repository.DataStore
	analytics Analytics
	forecasts Forecaster
	insights  Insights
	validate  *validator.Validate
	logger    logger.Logger
	metrics   *metrics.Metrics
	clock     utils.Clock
	version   string
}

// NewHandler creates a new Handler instance
func NewHandler(
	store repository.DataStore,
	analytics Analytics,
	forecasts Forecaster,
	insights Insights,
	log logger.Logger,
	m *metrics.Metrics,
	clock utils.Clock,
	version string,
) *Handler {
	return &Handler{
		store:     store,
		analytics: analytics,
		forecasts: forecasts,
		insights:  insights,
		validate:  validator.New(),
		logger:    log,
		metrics:   m,
		clock:     clock,
		version:   version,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors to statuses. Anything unexpected is
// logged and reported without details.
func (h *Handler) respondServiceError(w http.ResponseWriter, operation string, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		if notFoundMessage == "" {
			notFoundMessage = "Not found"
		}
		respondError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, entity.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Request failed", "operation", operation, "error", err)
		if h.metrics != nil {
			h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// emptyIfNil keeps list endpoints from encoding null
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.clock.Now().Format(time.RFC3339),
		"version":   h.version,
	})
}

// GetProducts handles GET /api/products
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.GetAllProducts(r.Context())
	if err != nil {
		h.respondServiceError(w, "get_products", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(products))
}

// GetProduct handles GET /api/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.store.GetProductByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, "get_product", err, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// GetProductVersions handles GET /api/products/{id}/versions
func (h *Handler) GetProductVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.store.GetPricingVersionsByProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, "get_product_versions", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(versions))
}

// GetPricingVersions handles GET /api/pricing/versions?productId=&startDate=&endDate=
func (h *Handler) GetPricingVersions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.VersionFilter{ProductID: query.Get("productId")}

	var err error
	if filter.StartDate, err = parseDateParam(query.Get("startDate")); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid startDate")
		return
	}
	if filter.EndDate, err = parseDateParam(query.Get("endDate")); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid endDate")
		return
	}

	versions, err := h.store.GetPricingVersionsFiltered(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, "get_pricing_versions", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(versions))
}

// parseDateParam returns nil for an absent parameter
func parseDateParam(raw string) (*entity.Date, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := entity.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// CreatePriceSnapshot handles POST /api/pricing/snapshot
func (h *Handler) CreatePriceSnapshot(w http.ResponseWriter, r *http.Request) {
	var version entity.PriceVersion
	if err := json.NewDecoder(r.Body).Decode(&version); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid price version data")
		return
	}
	if err := h.validate.Struct(version); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid price version data")
		return
	}

	if err := h.store.AddPriceVersion(r.Context(), &version); err != nil {
		h.respondServiceError(w, "create_price_snapshot", err, "")
		return
	}
	respondJSON(w, http.StatusCreated, version)
}

// GetMarginAnalytics handles GET /api/analytics/margins
func (h *Handler) GetMarginAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.analytics.GetMarginAnalytics(r.Context())
	if err != nil {
		h.respondServiceError(w, "get_margin_analytics", err, "")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetTrends handles GET /api/analytics/trends?period=3m|6m|12m
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	months, err := usecase.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid period, expected 3m, 6m or 12m")
		return
	}

	points, err := h.analytics.GetTrendData(r.Context(), months)
	if err != nil {
		h.respondServiceError(w, "get_trends", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(points))
}

// GetOutliers handles GET /api/analytics/outliers
func (h *Handler) GetOutliers(w http.ResponseWriter, r *http.Request) {
	outliers, err := h.analytics.GetOutliers(r.Context())
	if err != nil {
		h.respondServiceError(w, "get_outliers", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(outliers))
}

// GetRecentChanges handles GET /api/analytics/recent-changes?limit=N
func (h *Handler) GetRecentChanges(w http.ResponseWriter, r *http.Request) {
	limit := usecase.DefaultRecentChangesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	changes, err := h.analytics.GetRecentChanges(r.Context(), limit)
	if err != nil {
		h.respondServiceError(w, "get_recent_changes", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(changes))
}

// GetForecast handles GET /api/forecast/{productId}?season=
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.forecasts.GetForecast(r.Context(), mux.Vars(r)["productId"], r.URL.Query().Get("season"))
	if err != nil {
		h.respondServiceError(w, "get_forecast", err, "Forecast not available")
		return
	}
	respondJSON(w, http.StatusOK, forecast)
}

// GetHistoricalPatterns handles GET /api/forecast/patterns/{productId}
func (h *Handler) GetHistoricalPatterns(w http.ResponseWriter, r *http.Request) {
	versions, err := h.forecasts.GetHistoricalPatterns(r.Context(), mux.Vars(r)["productId"])
	if err != nil {
		h.respondServiceError(w, "get_historical_patterns", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(versions))
}

func departureFilter(r *http.Request) repository.DepartureFilter {
	query := r.URL.Query()
	return repository.DepartureFilter{
		ProductID:   query.Get("productId"),
		Season:      query.Get("season"),
		Status:      entity.DepartureStatus(query.Get("status")),
		BookingPace: entity.BookingPace(query.Get("bookingPace")),
	}
}

// GetDepartures handles GET /api/departures?productId=&season=&status=&bookingPace=
func (h *Handler) GetDepartures(w http.ResponseWriter, r *http.Request) {
	departures, err := h.store.FilterDepartures(r.Context(), departureFilter(r))
	if err != nil {
		h.respondServiceError(w, "get_departures", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(departures))
}

// GetDeparture handles GET /api/departures/{id}
func (h *Handler) GetDeparture(w http.ResponseWriter, r *http.Request) {
	departure, err := h.store.GetDepartureByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, "get_departure", err, "Departure not found")
		return
	}
	respondJSON(w, http.StatusOK, departure)
}

// GetProductDepartures handles GET /api/departures/product/{productId}?season=
func (h *Handler) GetProductDepartures(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var (
		departures []entity.Departure
		err        error
	)
	if season := r.URL.Query().Get("season"); season != "" {
		departures, err = h.store.GetDeparturesBySeason(r.Context(), productID, season)
	} else {
		departures, err = h.store.GetDeparturesByProduct(r.Context(), productID)
	}
	if err != nil {
		h.respondServiceError(w, "get_product_departures", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(departures))
}

// GetSeasonDepartures handles GET /api/departures/season/{productId}/{season}
func (h *Handler) GetSeasonDepartures(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departures, err := h.store.GetDeparturesBySeason(r.Context(), vars["productId"], vars["season"])
	if err != nil {
		h.respondServiceError(w, "get_season_departures", err, "")
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(departures))
}

// GetSeasonalInventory handles GET /api/departures/inventory/{productId}?season=
func (h *Handler) GetSeasonalInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.insights.GetSeasonalInventory(r.Context(), mux.Vars(r)["productId"], r.URL.Query().Get("season"))
	if err != nil {
		h.respondServiceError(w, "get_seasonal_inventory", err, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, inventory)
}

// GetRecommendation handles GET /api/departures/{id}/recommendation
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	recommendation, err := h.insights.GetRecommendation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, "get_recommendation", err, "Departure not found")
		return
	}
	respondJSON(w, http.StatusOK, recommendation)
}

// GetDepartureSummary handles GET /api/departures/summary?productId=&season=
func (h *Handler) GetDepartureSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	summary, err := h.insights.GetDepartureSummary(r.Context(), repository.DepartureFilter{
		ProductID: query.Get("productId"),
		Season:    query.Get("season"),
	})
	if err != nil {
		h.respondServiceError(w, "get_departure_summary", err, "")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
