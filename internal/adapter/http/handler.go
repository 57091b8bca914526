package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
	"adpacer/internal/metrics"
)

// Runner runs a single routine pass on demand.
type Runner interface {
	RunOnce(ctx context.Context, routine port.Routine) (port.PassStats, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the catalog for CRUD and reports, a Runner for manual routine
// passes and a logger for structured logging. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	catalog port.Catalog
	runner  Runner
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. corsOrigins lists
// the origins allowed to call the API from a browser.
func NewHandler(catalog port.Catalog, runner Runner, corsOrigins []string, logger *slog.Logger) *Handler {
	h := &Handler{catalog: catalog, runner: runner, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.handleListBrands)
			r.Post("/", h.handleCreateBrand)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetBrand)
				r.Put("/", h.handleUpdateBrand)
				r.Delete("/", h.handleDeleteBrand)
				r.Get("/spend/daily", h.handleBrandDailySpend)
				r.Get("/spend/monthly", h.handleBrandMonthlySpend)
				r.Get("/spend/export", h.handleBrandSpendExport)
			})
		})
		r.Route("/ads", func(r chi.Router) {
			r.Get("/", h.handleListAds)
			r.Post("/", h.handleCreateAd)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetAd)
				r.Put("/", h.handleUpdateAd)
				r.Delete("/", h.handleDeleteAd)
				r.Get("/spend", h.handleAdSpend)
				r.Get("/spend/records", h.handleAdSpendRecords)
			})
		})
		r.Get("/settings", h.handleGetSettings)
		r.Put("/settings", h.handleUpdateSettings)
		r.Post("/engine/{routine}", h.handleRunRoutine)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the {id} path parameter. It writes a 400 and returns false
// when the parameter is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Unexpected errors are
// logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrRoutineBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
