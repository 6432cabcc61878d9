package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// NoTopCampaign is reported when no campaign has received any clicks.
const NoTopCampaign = "None"

var ErrInvalidCampaign = errors.New("invalid campaign")

// Campaign represents a marketing campaign and its results.
// Budget is kept in the currency the store was last converted to
// (the base currency, USD, until the first conversion).
type Campaign struct {
	Name        string
	Budget      decimal.Decimal
	Clicks      int64
	Conversions int64 // expected to be <= Clicks, not enforced
}

// Validate reports ErrInvalidCampaign when any counter or the budget is
// negative.
func (c Campaign) Validate() error {
	switch {
	case c.Budget.IsNegative():
		return fmt.Errorf("%w: negative budget %s", ErrInvalidCampaign, c.Budget)
	case c.Clicks < 0:
		return fmt.Errorf("%w: negative clicks %d", ErrInvalidCampaign, c.Clicks)
	case c.Conversions < 0:
		return fmt.Errorf("%w: negative conversions %d", ErrInvalidCampaign, c.Conversions)
	}
	return nil
}

// ConversionRate returns conversions per click as a percentage. The
// second result is false for campaigns without clicks.
func (c Campaign) ConversionRate() (float64, bool) {
	if c.Clicks <= 0 {
		return 0, false
	}
	return float64(c.Conversions) / float64(c.Clicks) * 100, true
}
