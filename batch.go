package stepup

import (
	"fmt"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/shopspring/decimal"
)

// Row pairs an input position with its valuation outcome.
type Row struct {
	Position
	Result
	// Total is round(price * shares) at the report precision.
	// It is meaningful only when the row is Priced.
	Total decimal.Decimal
}

// Report is the outcome of valuating a batch of positions on a single date.
// Rows are in the same order as the input positions, one per position.
type Report struct {
	On        date.Date
	Precision int32
	Rows      []Row
}

// TotalValue returns the sum of the totals of all priced rows.
func (r *Report) TotalValue() decimal.Decimal {
	var sum decimal.Decimal
	for _, row := range r.Rows {
		if row.Priced() {
			sum = sum.Add(row.Total)
		}
	}
	return sum
}

// PricedCount returns the number of rows that received a price.
func (r *Report) PricedCount() int {
	var n int
	for _, row := range r.Rows {
		if row.Priced() {
			n++
		}
	}
	return n
}

// ValuateAll valuates every position as of 'on', sequentially and in input
// order. A failing row never aborts the batch; the failure is recorded in
// that row's Result. The only error returned is a request-level validation
// failure, raised before any row is valuated.
func (e *Engine) ValuateAll(positions []Position, on date.Date, precision int32) (*Report, error) {
	if precision < 0 || precision > MaxPrecision {
		return nil, fmt.Errorf("rounding precision %d out of range [0, %d]", precision, MaxPrecision)
	}

	report := &Report{On: on, Precision: precision, Rows: make([]Row, 0, len(positions))}
	for _, pos := range positions {
		res := e.Valuate(Request{
			Ticker:    pos.Ticker,
			Type:      pos.Type,
			On:        on,
			Shares:    pos.Shares,
			Precision: precision,
		})
		row := Row{Position: pos, Result: res}
		if res.Priced() {
			row.Total = roundTo(res.Price.Mul(pos.Shares), precision)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}
