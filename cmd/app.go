// Package cmd implements the CLI application to valuate securities as of a
// date of death.
package cmd

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
	"github.com/garrettjohnsonn/DoD-Calculator/calendar"
	"github.com/garrettjohnsonn/DoD-Calculator/eodhd"
	"github.com/garrettjohnsonn/DoD-Calculator/yahoo"
)

// Environment variables honored by the global flags. Flags win over the
// environment when both are set.
const (
	EnvProvider    = "DOD_PROVIDER"
	EnvHTTPTimeout = "DOD_HTTP_TIMEOUT"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&valuateCmd{},
	&calendarCmd{},
	&barCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var providerName = flag.String("provider", envOr(EnvProvider, "yahoo"), "Price provider: 'yahoo' or 'eodhd'")
var httpTimeout = flag.Duration("http-timeout", envDurationOr(EnvHTTPTimeout, 30*time.Second), "Timeout for provider HTTP requests")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// NewProvider builds the price provider named by the -provider flag, with
// the HTTP timeout from -http-timeout applied.
func NewProvider() (stepup.PriceProvider, error) {
	switch *providerName {
	case "yahoo":
		p := yahoo.New()
		p.Client = &http.Client{Timeout: *httpTimeout}
		return p, nil
	case "eodhd":
		key := eodhd.APIKey()
		if key == "" {
			return nil, fmt.Errorf("eodhd provider needs an API key: set -eodhd-api-key or %s", eodhd.EnvAPIKey)
		}
		p := eodhd.New(key)
		p.Client = eodhd.NewCachingClient(*httpTimeout)
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider %q, want 'yahoo' or 'eodhd'", *providerName)
	}
}

// NewEngine builds the valuation engine used by the subcommands: the NYSE
// trading calendar plus the configured price provider.
func NewEngine() (*stepup.Engine, error) {
	prices, err := NewProvider()
	if err != nil {
		return nil, err
	}
	return stepup.NewEngine(calendar.NewNYSE(), prices), nil
}
