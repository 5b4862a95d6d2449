package stepup

import (
	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/shopspring/decimal"
)

// fakeProvider serves bars from a fixed map, keyed by "TICKER YYYY-MM-DD".
// It records every lookup so tests can assert how many dates were queried.
type fakeProvider struct {
	bars  map[string]Bar
	err   error
	calls []string
}

func (p *fakeProvider) DailyBar(ticker string, day date.Date) (Bar, bool, error) {
	key := ticker + " " + day.String()
	p.calls = append(p.calls, key)
	if p.err != nil {
		return Bar{}, false, p.err
	}
	bar, ok := p.bars[key]
	return bar, ok, nil
}

// bar builds a Bar for a given day from float prices.
func bar(day string, open, high, low, close float64) Bar {
	return Bar{
		Day:   date.MustParse(day),
		Open:  decimal.NewFromFloat(open),
		High:  decimal.NewFromFloat(high),
		Low:   decimal.NewFromFloat(low),
		Close: decimal.NewFromFloat(close),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
