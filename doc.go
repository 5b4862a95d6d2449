// Package stepup computes the fair-market valuation of securities on a
// historical date, following the IRS step-up-in-basis conventions used when
// valuing an estate: assets are priced as of the date of death, and when that
// date falls on a day the exchange was closed, the valuation averages the
// prices of the surrounding trading days.
//
// The core functionalities include:
//   - Valuation Engine: a stateless engine that resolves the applicable
//     trading day(s) for a target date, fetches daily price bars, and reduces
//     them to a single valuation price under a fixed rounding-then-averaging
//     policy.
//   - Security Classification: mutual funds price once per day at the
//     published NAV, while stocks and ETFs trade intraday and are valued at
//     the average of the session extremes. The distinction is decided once,
//     when a request is built.
//   - Batch Processing: valuating a whole holdings file row by row, where a
//     failing row yields an explanatory note instead of aborting the batch.
//   - Import/Export: reading holdings from CSV and writing the valuation
//     table back out for the estate's records.
//
// Trading-day resolution and market data retrieval are external
// collaborators, consumed through the Calendar and PriceProvider interfaces.
// This package serves as the foundational logic for the `dod` command-line
// tool.
package stepup
