package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaign-metrics/internal/core/port"
)

const requestIDHeader = "X-Request-ID"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CampaignUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(h.requestID)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleAddCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/rates/{currency}", h.handleExchangeRate)
		r.Post("/budgets/convert/{currency}", h.handleConvertBudgets)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestID tags every request with an id, reusing one supplied by the
// client, and logs the request once it is served.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
		h.logger.Debug("request served",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
