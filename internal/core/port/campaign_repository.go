package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
)

// CampaignRepository defines the storage layer for campaigns. It is an
// outbound port in hexagonal architecture. Records keep insertion order
// and are never removed. Implementations must be concurrency-safe and
// rescale budgets atomically.
type CampaignRepository interface {
	// Append stores a campaign at the end of the sequence.
	Append(ctx context.Context, c domain.Campaign) error
	// List returns copies of all campaigns in insertion order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// ScaleBudgets multiplies every stored budget by factor in place.
	ScaleBudgets(ctx context.Context, factor decimal.Decimal) error
}
