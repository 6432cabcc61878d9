package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"campaign-metrics/internal/core/port"
)

// HTTPProvider implements port.RateProvider against a remote rate
// service. It issues GET {base}/rates/{code} and expects a JSON body of
// the form {"code":"EUR","rate":"0.85"}.
type HTTPProvider struct {
	base   url.URL
	client *http.Client
}

// RateResponse is the payload served by the remote rate service.
type RateResponse struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}

// NewHTTPProvider returns a provider for the service at base. A zero
// timeout leaves the client without a deadline beyond the request context.
func NewHTTPProvider(base url.URL, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}
}

// Rate fetches the rate for code. Every failure wraps
// port.ErrRateUnavailable.
func (p *HTTPProvider) Rate(ctx context.Context, code string) (decimal.Decimal, error) {
	endpoint := p.base.JoinPath("rates", code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: build request: %v", port.ErrRateUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", port.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: %s responded %d", port.ErrRateUnavailable, code, resp.StatusCode)
	}

	var body RateResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decode %s: %v", port.ErrRateUnavailable, code, err)
	}
	if !body.Rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate %s for %s", port.ErrRateUnavailable, body.Rate, code)
	}
	return body.Rate, nil
}
