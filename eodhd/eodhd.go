// Package eodhd fetches daily price bars from EOD Historical Data
// (https://eodhd.com).
package eodhd

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/shopspring/decimal"
)

// EnvAPIKey is the environment variable consulted when the -eodhd-api-key
// flag is not set.
const EnvAPIKey = "EODHD_API_KEY"

var apiKeyFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read the environment variable \""+EnvAPIKey+"\". You can get one at https://eodhd.com/")

// APIKey returns the configured EODHD API key, from the flag or the
// environment variable.
func APIKey() string {
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(EnvAPIKey)
	}
	return *apiKeyFlag
}

const defaultBase = "https://eodhd.com"

// Provider fetches daily bars from the EODHD EOD endpoint.
// It implements the valuation engine's price provider contract.
type Provider struct {
	APIKey string
	Client *http.Client // nil means a client with a daily-expiry disk cache

	base string // endpoint base URL, overridable in tests
}

// New returns a Provider for the given API key.
func New(apiKey string) *Provider {
	return &Provider{APIKey: apiKey, base: defaultBase}
}

// DailyBar returns the bar for an EODHD ticker (e.g. "AAPL.US" or plain
// "AAPL" for US listings) on a single day. A day with no published bar is a
// normal outcome, reported with ok=false.
func (p *Provider) DailyBar(ticker string, day date.Date) (stepup.Bar, bool, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// from and to bounds are inclusive, so a single-day range is from=to.
	base := p.base
	if base == "" {
		base = defaultBase
	}
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", base, url.PathEscape(ticker), p.APIKey, day, day)

	type info struct {
		Date  date.Date       `json:"date"`
		Open  decimal.Decimal `json:"open"`
		High  decimal.Decimal `json:"high"`
		Low   decimal.Decimal `json:"low"`
		Close decimal.Decimal `json:"close"`
	}

	// that's the payload
	content := make([]info, 0)
	if err := jwget(p.client(), addr, &content); err != nil {
		return stepup.Bar{}, false, fmt.Errorf("eodhd: cannot fetch %s on %s: %w", ticker, day, err)
	}

	for _, bar := range content {
		if bar.Date == day {
			return stepup.Bar{
				Day:   bar.Date,
				Open:  bar.Open,
				High:  bar.High,
				Low:   bar.Low,
				Close: bar.Close,
			}, true, nil
		}
	}
	return stepup.Bar{}, false, nil
}

var _ stepup.PriceProvider = (*Provider)(nil)
