package stepup

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SecurityType classifies how a security prices during a trading day.
// The classification decides which valuation rule applies, so it is derived
// once when the input row is parsed, never re-derived from free text later.
type SecurityType int

const (
	// StockOrETF trades intraday: the valuation averages the session extremes.
	StockOrETF SecurityType = iota
	// MutualFund prices once per day at the published NAV closing price.
	MutualFund
)

// ParseSecurityType derives the security type from the free-text Type column.
// Only "mutual fund" (case-insensitive, surrounding spaces ignored) selects
// MutualFund; anything else is treated as a stock or ETF.
func ParseSecurityType(s string) SecurityType {
	if strings.EqualFold(strings.TrimSpace(s), "mutual fund") {
		return MutualFund
	}
	return StockOrETF
}

func (t SecurityType) String() string {
	switch t {
	case MutualFund:
		return "Mutual Fund"
	default:
		return "Stock/ETF"
	}
}

// Position is one input row: a holding to valuate.
type Position struct {
	Ticker string
	Shares decimal.Decimal // may be fractional
	Type   SecurityType
}
