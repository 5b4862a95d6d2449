package stepup

import (
	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/shopspring/decimal"
)

// Bar holds one trading day's observed prices for a security.
// A Bar is never mutated once fetched.
type Bar struct {
	Day   date.Date
	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal
}

// PriceProvider retrieves historical daily price bars from a market data
// service.
//
// The two failure modes are deliberately distinct: (ok=false, err=nil) is the
// normal outcome when the provider has no bar published for that day (the
// exchange was closed, or the security did not trade), while a non-nil err
// reports a failure of the lookup itself (network, unknown symbol, malformed
// response). Implementations must be safe for repeated read-only queries.
type PriceProvider interface {
	DailyBar(ticker string, day date.Date) (bar Bar, ok bool, err error)
}

// Calendar answers trading-day questions for the reference exchange.
//
// Previous and Next must return trading days strictly before (resp. after)
// the given date, and must terminate across multi-day closures.
type Calendar interface {
	IsTradingDay(d date.Date) bool
	Previous(d date.Date) date.Date
	Next(d date.Date) date.Date
}
