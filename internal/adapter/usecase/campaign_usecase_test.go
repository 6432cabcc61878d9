package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-metrics/internal/adapter/memory"
	"campaign-metrics/internal/adapter/rates"
	"campaign-metrics/internal/core/domain"
	"campaign-metrics/internal/core/port"
	"campaign-metrics/internal/core/port/mocks"
)

func campaign(name string, budget float64, clicks, conversions int64) domain.Campaign {
	return domain.Campaign{
		Name:        name,
		Budget:      decimal.NewFromFloat(budget),
		Clicks:      clicks,
		Conversions: conversions,
	}
}

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		campaign("Holiday Promo", 1000.0, 500, 50),
		campaign("Summer Sale", 1500.0, 700, 100),
		campaign("Black Friday", 2000.0, 1200, 300),
	}
}

func newStoreUseCase(t *testing.T, campaigns ...domain.Campaign) (*CampaignUseCase, *memory.CampaignStore) {
	t.Helper()
	store := memory.NewCampaignStore()
	svc := NewCampaignUseCase(store, rates.NewStaticProvider(), nil)
	for _, c := range campaigns {
		require.NoError(t, svc.Add(context.Background(), c))
	}
	return svc, store
}

// TestSampleReport checks the figures printed by the CLI for the sample data.
func TestSampleReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStoreUseCase(t, sampleCampaigns()...)

	avg, err := svc.AverageConversionRate(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 18.75, avg, 1e-9)

	top, err := svc.TopPerformingCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Black Friday", top)

	require.NoError(t, svc.ConvertBudgets(ctx, "EUR"))
	got, err := svc.List(ctx)
	require.NoError(t, err)
	want := []string{"850", "1275", "1700"}
	for i, c := range got {
		assert.Equal(t, want[i], c.Budget.String(), c.Name)
	}
}

func TestAverageConversionRate(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []domain.Campaign
		want      float64
	}{
		{name: "empty store", want: 0},
		{
			name:      "no clicks",
			campaigns: []domain.Campaign{campaign("a", 10, 0, 0), campaign("b", 10, 0, 5)},
			want:      0,
		},
		{
			// mean of per-campaign rates would be (50 + 1) / 2 = 25.5
			name:      "global rate rather than mean of rates",
			campaigns: []domain.Campaign{campaign("small", 1, 10, 5), campaign("large", 1, 1000, 10)},
			want:      float64(15) / float64(1010) * 100,
		},
		{
			name:      "single campaign",
			campaigns: []domain.Campaign{campaign("a", 1, 200, 50)},
			want:      25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newStoreUseCase(t, tt.campaigns...)
			got, err := svc.AverageConversionRate(context.Background())
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTopPerformingCampaign(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []domain.Campaign
		want      string
	}{
		{name: "empty store", want: domain.NoTopCampaign},
		{
			name:      "all without clicks",
			campaigns: []domain.Campaign{campaign("a", 1, 0, 0), campaign("b", 1, 0, 0)},
			want:      domain.NoTopCampaign,
		},
		{
			name:      "zero clicks ignored despite conversions",
			campaigns: []domain.Campaign{campaign("ghost", 1, 0, 100), campaign("real", 1, 100, 1)},
			want:      "real",
		},
		{
			name:      "tie keeps earliest",
			campaigns: []domain.Campaign{campaign("first", 1, 10, 2), campaign("second", 1, 100, 20)},
			want:      "first",
		},
		{
			name:      "no conversions never wins",
			campaigns: []domain.Campaign{campaign("a", 1, 10, 0), campaign("b", 1, 50, 0)},
			want:      domain.NoTopCampaign,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newStoreUseCase(t, tt.campaigns...)
			got, err := svc.TopPerformingCampaign(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddRejectsInvalidCampaign(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Campaign
	}{
		{name: "negative budget", c: campaign("a", -1, 1, 1)},
		{name: "negative clicks", c: campaign("a", 1, -1, 0)},
		{name: "negative conversions", c: campaign("a", 1, 1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newStoreUseCase(t)
			err := svc.Add(context.Background(), tt.c)
			assert.ErrorIs(t, err, domain.ErrInvalidCampaign)
			assert.Equal(t, 0, store.Len())
		})
	}
}

// TestAddAcceptsMoreConversionsThanClicks documents that the relation is not enforced.
func TestAddAcceptsMoreConversionsThanClicks(t *testing.T) {
	svc, store := newStoreUseCase(t)
	require.NoError(t, svc.Add(context.Background(), campaign("odd", 1, 1, 5)))
	assert.Equal(t, 1, store.Len())
}

func TestExchangeRateStatic(t *testing.T) {
	svc, _ := newStoreUseCase(t)
	for code, want := range map[string]string{"EUR": "0.85", "GBP": "0.75", "USD": "1", "XYZ": "1"} {
		got, err := svc.ExchangeRate(context.Background(), code)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s: got %s", code, got)
	}
}

// TestConvertBudgetsTwice ensures conversions compound.
func TestConvertBudgetsTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStoreUseCase(t, campaign("a", 1000, 1, 1), campaign("b", 400, 1, 1))

	require.NoError(t, svc.ConvertBudgets(ctx, "GBP"))
	require.NoError(t, svc.ConvertBudgets(ctx, "GBP"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "562.5", got[0].Budget.String())
	assert.Equal(t, "225", got[1].Budget.String())
}

// TestConvertBudgetsRateUnavailable ensures a failed lookup leaves budgets untouched.
func TestConvertBudgetsRateUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockRateProvider(t)

	provider.EXPECT().
		Rate(mock.Anything, "EUR").
		Return(decimal.Zero, fmt.Errorf("%w: timeout", port.ErrRateUnavailable))

	svc := NewCampaignUseCase(repo, provider, nil)
	err := svc.ConvertBudgets(ctx, "EUR")
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRateUnavailable)
	repo.AssertNotCalled(t, "ScaleBudgets", mock.Anything, mock.Anything)
}

func TestConvertBudgetsUsesProviderRate(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockRateProvider(t)
	rate := decimal.RequireFromString("1.1")

	provider.EXPECT().Rate(mock.Anything, "CHF").Return(rate, nil)
	repo.EXPECT().
		ScaleBudgets(mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(rate) })).
		Return(nil)

	svc := NewCampaignUseCase(repo, provider, nil)
	require.NoError(t, svc.ConvertBudgets(ctx, "CHF"))
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, boom)

	svc := NewCampaignUseCase(repo, rates.NewStaticProvider(), nil)

	_, err := svc.AverageConversionRate(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.TopPerformingCampaign(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Overview(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestOverview(t *testing.T) {
	svc, _ := newStoreUseCase(t, sampleCampaigns()...)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Campaigns)
	assert.Equal(t, int64(2400), got.Clicks)
	assert.Equal(t, int64(450), got.Conversions)
	assert.Equal(t, "4500", got.Budget.String())
	assert.InDelta(t, 18.75, got.AverageConversionRate, 1e-9)
	assert.Equal(t, "Black Friday", got.TopCampaign)
}
