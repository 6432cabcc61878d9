package seed

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
	"campaign-metrics/internal/core/port"
)

// Campaigns returns the demo campaigns, budgets in USD.
func Campaigns() []domain.Campaign {
	return []domain.Campaign{
		{Name: "Holiday Promo", Budget: decimal.NewFromInt(1000), Clicks: 500, Conversions: 50},
		{Name: "Summer Sale", Budget: decimal.NewFromInt(1500), Clicks: 700, Conversions: 100},
		{Name: "Black Friday", Budget: decimal.NewFromInt(2000), Clicks: 1200, Conversions: 300},
	}
}

// Seed adds the demo campaigns through svc.
func Seed(ctx context.Context, svc port.CampaignUseCase) error {
	for _, c := range Campaigns() {
		if err := svc.Add(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
