package stepup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the positions import format and the
// results export format. Both are CSV: easy to produce from any spreadsheet
// and easy to hand back to one.

// positionColumns are the required header columns of a positions file.
var positionColumns = []string{"ticker", "shares", "type"}

// ImportPositions reads positions from 'r' in the import format.
//
// The import format is a CSV file whose header must contain the columns
// Ticker, Shares and Type (case-insensitive, in any order; extra columns are
// ignored). Shares is a decimal quantity and may be fractional. Type is free
// text: "mutual fund" selects the mutual fund pricing rule, anything else is
// treated as a stock or ETF.
//
// Structural problems (missing columns, unparseable rows) are reported
// before any valuation begins, so a batch is either fully accepted or fully
// rejected at this stage.
func ImportPositions(r io.Reader) ([]Position, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("positions file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read positions header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range positionColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("positions file must contain 'Ticker', 'Shares', and 'Type' columns; missing: %s", strings.Join(missing, ", "))
	}

	var positions []Position
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("cannot read positions line %d: %w", line, err)
		}

		ticker := strings.TrimSpace(record[index["ticker"]])
		if ticker == "" {
			return nil, fmt.Errorf("positions line %d: empty ticker", line)
		}
		shares, err := decimal.NewFromString(strings.TrimSpace(record[index["shares"]]))
		if err != nil {
			return nil, fmt.Errorf("positions line %d: invalid shares %q: %w", line, record[index["shares"]], err)
		}
		positions = append(positions, Position{
			Ticker: ticker,
			Shares: shares,
			Type:   ParseSecurityType(record[index["type"]]),
		})
	}
	return positions, nil
}

// exportHeader is the column layout of the export format. Detail columns are
// sparse: each row fills only the columns of the pricing branch it took.
var exportHeader = []string{
	"Ticker", "Shares", "Price", "Total Value", "Note",
	"Closing Price", "High", "Low",
	"Prior High", "Prior Low", "Prior Close",
	"Next High", "Next Low", "Next Close",
}

// ExportReport writes the report to 'w' in the export format, a CSV table
// mirroring what the estate's records expect: one row per input position,
// full digits, empty cells for absent values.
func ExportReport(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := make([]string, len(exportHeader))
		record[0] = row.Ticker
		record[1] = row.Shares.String()
		if row.Priced() {
			record[2] = row.Price.String()
			record[3] = row.Total.String()
		}
		record[4] = row.Note

		switch {
		case row.Fund != nil:
			record[5] = row.Fund.Close.String()
		case row.Session != nil:
			record[5] = row.Session.Close.String()
			record[6] = row.Session.High.String()
			record[7] = row.Session.Low.String()
		case row.Bracket != nil:
			record[8] = row.Bracket.PriorHigh.String()
			record[9] = row.Bracket.PriorLow.String()
			record[10] = row.Bracket.PriorClose.String()
			record[11] = row.Bracket.NextHigh.String()
			record[12] = row.Bracket.NextLow.String()
			record[13] = row.Bracket.NextClose.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
