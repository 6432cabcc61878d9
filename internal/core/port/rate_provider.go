package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateProvider looks up the exchange rate from the base currency to the
// currency identified by code. Failures must wrap ErrRateUnavailable.
type RateProvider interface {
	Rate(ctx context.Context, code string) (decimal.Decimal, error)
}
