// Package yahoo provides daily price bars from the Yahoo Finance chart API.
//
// It queries the v8 chart endpoint for a single day and extracts the OHLC
// values from the JSON payload. No API key is required, but Yahoo rejects
// requests carrying Go's default User-Agent, so every request is sent with a
// browser-like one.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

const defaultBase = "https://query1.finance.yahoo.com"

// Yahoo serves an error page to clients that identify as Go programs.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Provider fetches daily bars from the Yahoo Finance chart API.
//
// The zero value is usable; Client defaults to http.DefaultClient.
type Provider struct {
	// Client is the HTTP client used for requests. Replace it to set a
	// timeout or a caching transport.
	Client *http.Client

	base string // endpoint base URL, overridable in tests
}

// New returns a Provider querying the public Yahoo endpoint.
func New() *Provider { return &Provider{} }

var _ stepup.PriceProvider = (*Provider)(nil)

// DailyBar returns the bar for ticker on the given day.
//
// It asks the chart endpoint for the [day, day+1) window at daily interval
// and keeps the entry whose timestamp falls on day (Yahoo timestamps the bar
// at the session open, so the window can spill into the next calendar day).
// An unknown ticker or a day without a session yields ok=false; transport
// and payload failures are returned as errors.
func (p *Provider) DailyBar(ticker string, day date.Date) (bar stepup.Bar, ok bool, err error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		p.baseURL(), url.PathEscape(ticker), day.Unix(), day.Add(1).Unix())

	jobj, found, err := p.chart(addr)
	if err != nil {
		return bar, false, fmt.Errorf("yahoo: cannot fetch %s on %s: %w", ticker, day, err)
	}
	if !found {
		return bar, false, nil
	}

	stamps, err := jlist(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		// a well-formed payload without any session has no timestamp array
		return bar, false, nil
	}

	for i, jstamp := range stamps {
		sec, isNum := jstamp.(float64)
		if !isNum {
			continue
		}
		t := time.Unix(int64(sec), 0).UTC()
		if date.New(t.Year(), t.Month(), t.Day()) != day {
			continue
		}
		open, err := quoteAt(jobj, "open", i)
		if err != nil {
			return bar, false, fmt.Errorf("yahoo: malformed payload for %s on %s: %w", ticker, day, err)
		}
		high, err := quoteAt(jobj, "high", i)
		if err != nil {
			return bar, false, fmt.Errorf("yahoo: malformed payload for %s on %s: %w", ticker, day, err)
		}
		low, err := quoteAt(jobj, "low", i)
		if err != nil {
			return bar, false, fmt.Errorf("yahoo: malformed payload for %s on %s: %w", ticker, day, err)
		}
		cls, err := quoteAt(jobj, "close", i)
		if err != nil {
			return bar, false, fmt.Errorf("yahoo: malformed payload for %s on %s: %w", ticker, day, err)
		}
		return stepup.Bar{
			Day:   day,
			Open:  decimal.NewFromFloat(open),
			High:  decimal.NewFromFloat(high),
			Low:   decimal.NewFromFloat(low),
			Close: decimal.NewFromFloat(cls),
		}, true, nil
	}
	return bar, false, nil
}

func (p *Provider) baseURL() string {
	if p.base != "" {
		return p.base
	}
	return defaultBase
}

func (p *Provider) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return http.DefaultClient
}

// chart GETs the chart URL and decodes the JSON body. Yahoo answers unknown
// symbols with a 404 carrying a chart.error object, which is a plain "no
// data" here, not a fault.
func (p *Provider) chart(addr string) (jobj any, found bool, err error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client().Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, false, err
	}
	return jobj, true, nil
}

// jlist extracts path from jobj and asserts the result is a JSON array.
func jlist(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list: %v", path, jval)
	}
	return list, nil
}

// quoteAt returns the i-th value of the given quote series (open, high, low,
// close). Yahoo publishes null entries for halted sessions; those are
// reported as errors since a bar without all four values is unusable.
func quoteAt(jobj any, field string, i int) (float64, error) {
	path := fmt.Sprintf("$.chart.result[0].indicators.quote[0].%s", field)
	series, err := jlist(jobj, path)
	if err != nil {
		return 0, err
	}
	if i >= len(series) {
		return 0, fmt.Errorf("%q has %d entries, want index %d", path, len(series), i)
	}
	val, ok := series[i].(float64)
	if !ok {
		return 0, fmt.Errorf("%q[%d] is not a number: %v", path, i, series[i])
	}
	return val, nil
}
