package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/port"
)

type rateResponse struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}

// handleExchangeRate reports the rate for the {currency} path parameter.
// An unavailable rate results in HTTP 502.
func (h *Handler) handleExchangeRate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "currency")
	rate, err := h.svc.ExchangeRate(r.Context(), code)
	if err != nil {
		h.rateError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rateResponse{Code: code, Rate: rate})
}

// handleConvertBudgets rescales every budget to {currency} and answers
// HTTP 204. Budgets are untouched when the rate is unavailable (HTTP 502).
func (h *Handler) handleConvertBudgets(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "currency")
	if err := h.svc.ConvertBudgets(r.Context(), code); err != nil {
		h.rateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rateError(w http.ResponseWriter, err error) {
	if errors.Is(err, port.ErrRateUnavailable) {
		h.logger.Warn("rate unavailable", slog.Any("error", err))
		http.Error(w, "exchange rate unavailable", http.StatusBadGateway)
		return
	}
	h.logger.Error("rate error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
