package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
)

type campaignDTO struct {
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
}

// handleAddCampaign decodes a campaign and appends it to the store. Bad
// JSON and invalid campaigns produce HTTP 400; success is HTTP 201.
func (h *Handler) handleAddCampaign(w http.ResponseWriter, r *http.Request) {
	var in campaignDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c := domain.Campaign{
		Name:        in.Name,
		Budget:      in.Budget,
		Clicks:      in.Clicks,
		Conversions: in.Conversions,
	}
	if err := h.svc.Add(r.Context(), c); err != nil {
		if errors.Is(err, domain.ErrInvalidCampaign) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("add campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, in)
}

// handleListCampaigns returns every campaign in insertion order.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignDTO{
			Name:        c.Name,
			Budget:      c.Budget,
			Clicks:      c.Clicks,
			Conversions: c.Conversions,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
