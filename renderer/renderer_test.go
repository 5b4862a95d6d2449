package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValuationMarkdown(t *testing.T) {
	report := &stepup.Report{
		On:        date.MustParse("2025-08-23"),
		Precision: 2,
		Rows: []stepup.Row{
			{
				Position: stepup.Position{Ticker: "SPY", Shares: dec("10"), Type: stepup.StockOrETF},
				Result: stepup.Result{
					Status: stepup.Priced,
					Price:  dec("100.5"),
					Note:   "Market closed on date of death - Average of 2025-08-22 and 2025-08-25 prices",
					Bracket: &stepup.BracketDetail{
						PriorDay: date.MustParse("2025-08-22"), PriorHigh: dec("101"), PriorLow: dec("99"), PriorClose: dec("100"),
						NextDay: date.MustParse("2025-08-25"), NextHigh: dec("103"), NextLow: dec("99"), NextClose: dec("101"),
					},
				},
				Total: dec("1005"),
			},
			{
				Position: stepup.Position{Ticker: "GONE", Shares: dec("5"), Type: stepup.StockOrETF},
				Result:   stepup.Result{Status: stepup.NoData, Note: "No data available for this date"},
			},
		},
	}

	got := ValuationMarkdown(report)

	wants := []string{
		"# Date-of-Death Valuation",
		"2025-08-23",
		"## Positions",
		"SPY",
		"$1,005.00",
		"No data available for this date",
		"## Non-Trading Day Detail",
		"2025-08-22",
		"2025-08-25",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("ValuationMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestValuationMarkdown_UnpricedRowHasNoTotal(t *testing.T) {
	report := &stepup.Report{
		On:        date.MustParse("2025-08-20"),
		Precision: 2,
		Rows: []stepup.Row{
			{
				Position: stepup.Position{Ticker: "GONE", Shares: dec("5"), Type: stepup.StockOrETF},
				Result:   stepup.Result{Status: stepup.ProviderError, Note: "Error processing GONE: boom"},
			},
		},
	}

	got := ValuationMarkdown(report)
	if strings.Contains(got, "$") && !strings.Contains(got, "$0.00") {
		t.Errorf("ValuationMarkdown() rendered a money value for an unpriced row:\n%s", got)
	}
	if !strings.Contains(got, "Error processing GONE") {
		t.Errorf("ValuationMarkdown() missing the failure note:\n%s", got)
	}
}
