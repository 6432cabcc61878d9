package rates

import (
	"context"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency campaign budgets are recorded in.
const BaseCurrency = "USD"

var defaultTable = map[string]decimal.Decimal{
	"EUR": decimal.RequireFromString("0.85"),
	"GBP": decimal.RequireFromString("0.75"),
}

// StaticProvider implements port.RateProvider with a fixed table. Codes
// are matched exactly; the base currency and unknown codes map to 1.
type StaticProvider struct {
	table map[string]decimal.Decimal
}

// NewStaticProvider returns a provider backed by the built-in table.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{table: defaultTable}
}

// Rate never fails.
func (p *StaticProvider) Rate(_ context.Context, code string) (decimal.Decimal, error) {
	if rate, ok := p.table[code]; ok {
		return rate, nil
	}
	return decimal.NewFromInt(1), nil
}
