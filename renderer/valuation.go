// Package renderer turns valuation reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
)

// ValuationMarkdown renders a batch valuation report to a markdown string.
func ValuationMarkdown(r *stepup.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Date-of-Death Valuation")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Date of Death"),
			md.Bold(r.On.String()),
		},
		Rows: [][]string{
			{"Positions", fmt.Sprintf("%d", len(r.Rows))},
			{"Priced", fmt.Sprintf("%d", r.PricedCount())},
			{"Total Value", stepup.USD(r.TotalValue()).String()},
		},
	})

	if len(r.Rows) > 0 {
		doc.H2("Positions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{
				"Ticker",
				"Shares",
				"Type",
				"Price",
				"Total Value",
				"Note",
			},
		}
		for _, row := range r.Rows {
			price, total := "", ""
			if row.Priced() {
				price = row.Price.String()
				total = stepup.USD(row.Total).String()
			}
			table.Rows = append(table.Rows, []string{
				row.Ticker,
				row.Shares.String(),
				row.Type.String(),
				price,
				total,
				row.Note,
			})
		}
		doc.Table(table)
	}

	if details := bracketRows(r); len(details) > 0 {
		doc.H2("Non-Trading Day Detail")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{
				"Ticker",
				"Prior Day",
				"Prior High",
				"Prior Low",
				"Next Day",
				"Next High",
				"Next Low",
			},
			Rows: details,
		}
		doc.Table(table)
	}

	return doc.String()
}

// bracketRows collects the surrounding-session detail of every row priced on
// a non-trading day, so the averaging can be audited from the report alone.
func bracketRows(r *stepup.Report) [][]string {
	var rows [][]string
	for _, row := range r.Rows {
		b := row.Bracket
		if b == nil {
			continue
		}
		rows = append(rows, []string{
			row.Ticker,
			b.PriorDay.String(),
			b.PriorHigh.String(),
			b.PriorLow.String(),
			b.NextDay.String(),
			b.NextHigh.String(),
			b.NextLow.String(),
		})
	}
	return rows
}
