package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
	"campaign-metrics/internal/core/port"
)

// CampaignUseCase provides the campaign analysis logic. It orchestrates
// the campaign repository and the rate provider to implement
// port.CampaignUseCase.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	rates  port.RateProvider
	logger *slog.Logger
}

// NewCampaignUseCase creates a new usecase with the provided repository
// and rate provider. A nil logger discards log output.
func NewCampaignUseCase(repo port.CampaignRepository, rates port.RateProvider, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{repo: repo, rates: rates, logger: logger}
}

// Add validates c and appends it to the repository.
func (u *CampaignUseCase) Add(ctx context.Context, c domain.Campaign) error {
	if err := c.Validate(); err != nil {
		u.logger.Warn("campaign rejected", slog.String("name", c.Name), slog.Any("error", err))
		return err
	}
	return u.repo.Append(ctx, c)
}

// List returns the stored campaigns in insertion order.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

// AverageConversionRate returns sum(conversions) / sum(clicks) * 100
// across all campaigns. This is the global rate, not the mean of the
// per-campaign rates.
func (u *CampaignUseCase) AverageConversionRate(ctx context.Context) (float64, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	clicks, conversions := totals(campaigns)
	return averageRate(clicks, conversions), nil
}

// TopPerformingCampaign returns the name of the campaign with the highest
// conversion rate, or domain.NoTopCampaign.
func (u *CampaignUseCase) TopPerformingCampaign(ctx context.Context) (string, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	return topCampaign(campaigns), nil
}

// ExchangeRate returns the rate from the base currency to code.
func (u *CampaignUseCase) ExchangeRate(ctx context.Context, code string) (decimal.Decimal, error) {
	return u.rates.Rate(ctx, code)
}

// ConvertBudgets rescales every budget by the rate for code. The rate is
// fetched before anything is touched; on failure the store is unchanged.
func (u *CampaignUseCase) ConvertBudgets(ctx context.Context, code string) error {
	rate, err := u.ExchangeRate(ctx, code)
	if err != nil {
		return fmt.Errorf("convert budgets to %s: %w", code, err)
	}
	if err = u.repo.ScaleBudgets(ctx, rate); err != nil {
		return fmt.Errorf("convert budgets to %s: %w", code, err)
	}
	u.logger.Info("budgets converted", slog.String("currency", code), slog.String("rate", rate.String()))
	return nil
}

// Overview returns every aggregate over a single snapshot of the store.
func (u *CampaignUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clicks, conversions := totals(campaigns)
	budget := decimal.Zero
	for _, c := range campaigns {
		budget = budget.Add(c.Budget)
	}
	return &port.Overview{
		Campaigns:             len(campaigns),
		Clicks:                clicks,
		Conversions:           conversions,
		Budget:                budget,
		AverageConversionRate: averageRate(clicks, conversions),
		TopCampaign:           topCampaign(campaigns),
	}, nil
}

func totals(campaigns []domain.Campaign) (clicks, conversions int64) {
	for _, c := range campaigns {
		clicks += c.Clicks
		conversions += c.Conversions
	}
	return clicks, conversions
}

func averageRate(clicks, conversions int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

// topCampaign keeps the first campaign reaching the highest rate. The
// search starts from 0, so a campaign without conversions never wins.
func topCampaign(campaigns []domain.Campaign) string {
	top := domain.NoTopCampaign
	best := 0.0
	for _, c := range campaigns {
		rate, ok := c.ConversionRate()
		if !ok {
			continue
		}
		if rate > best {
			best = rate
			top = c.Name
		}
	}
	return top
}
