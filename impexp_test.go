package stepup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

func TestImportPositions(t *testing.T) {
	in := `Ticker,Shares,Type
AAPL,100,Stock
VTSAX,50.5,Mutual Fund
SPY,10,ETF
`
	positions, err := ImportPositions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportPositions() unexpected error = %v", err)
	}
	if len(positions) != 3 {
		t.Fatalf("ImportPositions() returned %d positions, want 3", len(positions))
	}
	if positions[0].Ticker != "AAPL" || positions[0].Type != StockOrETF {
		t.Errorf("ImportPositions()[0] = %+v", positions[0])
	}
	if positions[1].Type != MutualFund || !positions[1].Shares.Equal(dec("50.5")) {
		t.Errorf("ImportPositions()[1] = %+v", positions[1])
	}
}

func TestImportPositions_HeaderIsFlexible(t *testing.T) {
	// Columns in any order, any case, with extras.
	in := `Account,TYPE,ticker,Shares
401k,mutual fund,VFIAX,12.25
`
	positions, err := ImportPositions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportPositions() unexpected error = %v", err)
	}
	if len(positions) != 1 || positions[0].Ticker != "VFIAX" || positions[0].Type != MutualFund {
		t.Errorf("ImportPositions() = %+v", positions)
	}
}

func TestImportPositions_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string // substring of the error
	}{
		{"empty file", "", "empty"},
		{"missing columns", "Ticker,Qty\nAAPL,1\n", "missing: shares, type"},
		{"invalid shares", "Ticker,Shares,Type\nAAPL,ten,Stock\n", "invalid shares"},
		{"empty ticker", "Ticker,Shares,Type\n,1,Stock\n", "empty ticker"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportPositions(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("ImportPositions() expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ImportPositions() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestExportReport(t *testing.T) {
	report := &Report{
		On:        date.MustParse("2025-08-23"),
		Precision: 2,
		Rows: []Row{
			{
				Position: Position{Ticker: "SPY", Shares: dec("10"), Type: StockOrETF},
				Result: Result{
					Status: Priced,
					Price:  dec("100"),
					Note:   "Market closed on date of death - Average of 2025-08-22 and 2025-08-25 prices",
					Bracket: &BracketDetail{
						PriorDay: date.MustParse("2025-08-22"), PriorHigh: dec("101"), PriorLow: dec("99"), PriorClose: dec("100.5"),
						NextDay: date.MustParse("2025-08-25"), NextHigh: dec("103"), NextLow: dec("97"), NextClose: dec("99.5"),
					},
				},
				Total: dec("1000"),
			},
			{
				Position: Position{Ticker: "GONE", Shares: dec("5"), Type: StockOrETF},
				Result:   Result{Status: NoData, Note: "No data available for this date range"},
			},
		},
	}

	var buf bytes.Buffer
	if err := ExportReport(&buf, report); err != nil {
		t.Fatalf("ExportReport() unexpected error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("ExportReport() wrote %d lines, want 3 (header + 2 rows):\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Ticker,Shares,Price,Total Value,Note") {
		t.Errorf("ExportReport() header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "SPY,10,100,1000,") {
		t.Errorf("ExportReport() priced row = %q", lines[1])
	}
	if !strings.Contains(lines[1], "101,99,100.5,103,97,99.5") {
		t.Errorf("ExportReport() priced row is missing bracket detail: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "GONE,5,,,No data available") {
		t.Errorf("ExportReport() no-data row = %q", lines[2])
	}
}
