package configs

import (
	"net/url"
	"strings"
	"time"
)

const (
	RatesSourceStatic = "static"
	RatesSourceHTTP   = "http"
)

// Rates selects where exchange rates come from. Source "static" uses the
// built-in table and never touches the network; "http" queries the rate
// service at Addr.
type Rates struct {
	Source  string        `env:"SOURCE" envDefault:"static"`
	Addr    url.URL       `env:"ADDRESS" envDefault:"http://localhost:8081"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// SourceName normalises Source. Unknown values fall back to "static".
func (c Rates) SourceName() string {
	switch strings.ToLower(c.Source) {
	case RatesSourceHTTP:
		return RatesSourceHTTP
	default:
		return RatesSourceStatic
	}
}

// Report configures the CLI report.
type Report struct {
	// Currency is the code budgets are converted to after printing.
	Currency string `env:"CURRENCY" envDefault:"EUR"`
}
