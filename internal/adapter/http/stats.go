package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

type overviewResponse struct {
	Campaigns             int             `json:"campaigns"`
	Clicks                int64           `json:"clicks"`
	Conversions           int64           `json:"conversions"`
	Budget                decimal.Decimal `json:"budget"`
	AverageConversionRate float64         `json:"average_conversion_rate"`
	TopCampaign           string          `json:"top_campaign"`
}

// handleStatsOverview returns the aggregate figures over every stored
// campaign. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Overview(r.Context())
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, overviewResponse{
		Campaigns:             stats.Campaigns,
		Clicks:                stats.Clicks,
		Conversions:           stats.Conversions,
		Budget:                stats.Budget,
		AverageConversionRate: stats.AverageConversionRate,
		TopCampaign:           stats.TopCampaign,
	})
}
