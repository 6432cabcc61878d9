package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/domain"
)

// CampaignStore implements port.CampaignRepository on top of an ordered
// in-memory slice. Campaigns keep their insertion order, duplicates are
// allowed and nothing is ever removed.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
}

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{}
}

// Append adds c to the end of the sequence. Validation is the caller's
// responsibility.
func (s *CampaignStore) Append(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append(s.campaigns, c)
	return nil
}

// List returns a copy of the stored campaigns.
func (s *CampaignStore) List(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.campaigns), nil
}

// ScaleBudgets multiplies every budget by factor under a single lock, so
// readers never observe a partially converted store.
func (s *CampaignStore) ScaleBudgets(_ context.Context, factor decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		s.campaigns[i].Budget = s.campaigns[i].Budget.Mul(factor)
	}
	return nil
}

// Len returns the number of stored campaigns.
func (s *CampaignStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.campaigns)
}
