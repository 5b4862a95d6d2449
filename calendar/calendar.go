// Package calendar resolves trading days for the New York Stock Exchange.
//
// A naive weekday check misclassifies exchange holidays (Thanksgiving,
// Christmas, Good Friday...) as tradable, and a date-of-death valuation on
// such a day would silently use the wrong prices. Holidays are computed from
// the exchange's closure rules, so the calendar works for any year without a
// bundled holiday table.
package calendar

import (
	"sync"
	"time"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

// NYSE is the trading calendar of the New York Stock Exchange.
//
// The zero value is not usable, call NewNYSE. All methods are safe for
// concurrent use: the per-year holiday cache is guarded, so one NYSE can be
// shared by a batch processed in parallel.
type NYSE struct {
	mu       sync.Mutex
	holidays map[int]map[date.Date]bool // full-closure days, cached by year
}

// NewNYSE returns a new NYSE trading calendar.
func NewNYSE() *NYSE {
	return &NYSE{holidays: make(map[int]map[date.Date]bool)}
}

// IsTradingDay reports whether the exchange is open for regular trading on d:
// a weekday that is not a full-closure holiday.
func (c *NYSE) IsTradingDay(d date.Date) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.holidaysFor(d.Year())[d]
}

// Previous returns the latest trading day strictly before d.
// It walks backward one day at a time, so it terminates across
// multi-day closures (e.g. a holiday adjacent to a weekend).
func (c *NYSE) Previous(d date.Date) date.Date {
	day := d.Add(-1)
	for !c.IsTradingDay(day) {
		day = day.Add(-1)
	}
	return day
}

// Next returns the earliest trading day strictly after d.
func (c *NYSE) Next(d date.Date) date.Date {
	day := d.Add(1)
	for !c.IsTradingDay(day) {
		day = day.Add(1)
	}
	return day
}

func (c *NYSE) holidaysFor(year int) map[date.Date]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hs, ok := c.holidays[year]; ok {
		return hs
	}
	hs := make(map[date.Date]bool)
	for _, h := range marketHolidays(year) {
		hs[h] = true
	}
	c.holidays[year] = hs
	return hs
}
