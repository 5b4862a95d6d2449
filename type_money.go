package stepup

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the reporting currency.
// Estate valuations are filed in USD, so the currency is fixed; the decimal
// value keeps every digit, only String rounds for display.
type Money struct {
	value decimal.Decimal
	cur   string
}

// USD wraps a decimal amount as US dollars.
func USD(value decimal.Decimal) Money {
	return Money{value: value, cur: money.USD}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency's symbol and grouping, rounded
// to the currency's fraction. Exports that must keep full digits use Value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Value returns the exact decimal amount.
func (m Money) Value() decimal.Decimal { return m.value }

func (m Money) IsZero() bool { return m.value.IsZero() }
