package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// campaign analyzer. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type CampaignUseCase interface {
	// Add validates the campaign and appends it to the store. Campaigns
	// with a negative budget, clicks or conversions are rejected with
	// domain.ErrInvalidCampaign.
	Add(ctx context.Context, c domain.Campaign) error

	// List returns the stored campaigns in insertion order.
	List(ctx context.Context) ([]domain.Campaign, error)

	// AverageConversionRate returns total conversions over total clicks
	// as a percentage, or 0 when there are no clicks at all.
	AverageConversionRate(ctx context.Context) (float64, error)

	// TopPerformingCampaign returns the name of the campaign with the
	// highest conversion rate. Campaigns without clicks are ignored and
	// ties keep the earliest campaign. domain.NoTopCampaign is returned
	// when nothing qualifies.
	TopPerformingCampaign(ctx context.Context) (string, error)

	// ExchangeRate returns the rate from the base currency to code.
	ExchangeRate(ctx context.Context, code string) (decimal.Decimal, error)

	// ConvertBudgets multiplies every stored budget by the rate for code.
	// Conversions compound. If the rate cannot be fetched the budgets are
	// left untouched and an error wrapping ErrRateUnavailable is returned.
	ConvertBudgets(ctx context.Context, code string) error

	// Overview returns all aggregate figures in one call.
	Overview(ctx context.Context) (*Overview, error)
}

// Overview contains aggregated figures over every stored campaign. It is
// a DTO used by the CLI and the HTTP layer.
type Overview struct {
	Campaigns             int
	Clicks                int64
	Conversions           int64
	Budget                decimal.Decimal
	AverageConversionRate float64
	TopCampaign           string
}
