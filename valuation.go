package stepup

import (
	"fmt"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/shopspring/decimal"
)

// MaxPrecision is the largest accepted rounding precision, in decimal digits.
const MaxPrecision = 10

// Notes for the data-unavailable outcomes. These are part of the output
// contract: downstream sheets match on them.
const (
	noteNoData      = "No data available for this date"
	noteNoDataRange = "No data available for this date range"
)

// Request is the immutable input of a single valuation.
type Request struct {
	Ticker    string
	Type      SecurityType
	On        date.Date       // the valuation (date of death) date
	Shares    decimal.Decimal // informational here; used by ValuateAll for totals
	Precision int32           // rounding precision in decimal digits, 0 to MaxPrecision
}

// Status classifies the outcome of a valuation.
//
// NoData and ProviderError both leave the price absent, but they are distinct
// outcomes: a provider legitimately has no bar for an unlisted date, while an
// infrastructure fault may be worth retrying.
type Status int

const (
	// Priced means a valuation price was computed.
	Priced Status = iota
	// NoData means the provider has no bar published for the pricing date(s).
	NoData
	// ProviderError means a price lookup failed (network, unknown symbol, ...).
	ProviderError
)

func (s Status) String() string {
	switch s {
	case Priced:
		return "priced"
	case NoData:
		return "no-data"
	default:
		return "provider-error"
	}
}

// FundDetail is the detail payload of a mutual fund valuation.
type FundDetail struct {
	Close decimal.Decimal // the NAV used, rounded to the request precision
}

// SessionDetail is the detail payload of a stock/ETF valuation on a trading
// day. High and Low are rounded to the request precision before the price is
// averaged from them, and are exposed here so the arithmetic can be audited.
type SessionDetail struct {
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal
}

// BracketDetail is the detail payload of a stock/ETF valuation on a
// non-trading day: the surrounding trading days and their rounded extremes.
type BracketDetail struct {
	PriorDay   date.Date
	PriorHigh  decimal.Decimal
	PriorLow   decimal.Decimal
	PriorClose decimal.Decimal
	NextDay    date.Date
	NextHigh   decimal.Decimal
	NextLow    decimal.Decimal
	NextClose  decimal.Decimal
}

// Result is the outcome of a single valuation. It is created fresh per
// request and never updated after construction.
//
// Price is meaningful only when Status is Priced; Note always explains how
// the price was derived or why it is absent. Exactly one of the detail
// pointers is set, matching the pricing branch taken, and none when the
// price is absent.
type Result struct {
	Status Status
	Price  decimal.Decimal
	Note   string

	Fund    *FundDetail
	Session *SessionDetail
	Bracket *BracketDetail
}

// Priced reports whether the result carries a valuation price.
func (r Result) Priced() bool { return r.Status == Priced }

// Engine computes step-up-basis valuations. It is stateless and
// request-scoped: each Valuate call is independent, so a batch may be
// processed in any order.
type Engine struct {
	Calendar Calendar
	Prices   PriceProvider
}

// NewEngine returns an Engine using the given collaborators.
func NewEngine(cal Calendar, prices PriceProvider) *Engine {
	return &Engine{Calendar: cal, Prices: prices}
}

var two = decimal.NewFromInt(2)

// roundTo rounds half away from zero to the given number of decimal digits.
// Rounding an already-rounded value at the same precision is a no-op.
func roundTo(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Valuate computes the valuation price for a single request.
//
// It never fails: a collaborator fault is contained here and converted into
// a ProviderError result whose note embeds the ticker and the fault, so one
// bad row cannot abort the processing of the remaining rows.
func (e *Engine) Valuate(req Request) Result {
	res, err := e.valuate(req)
	if err != nil {
		return Result{
			Status: ProviderError,
			Note:   fmt.Sprintf("Error processing %s: %v", req.Ticker, err),
		}
	}
	return res
}

func (e *Engine) valuate(req Request) (Result, error) {
	closed := !e.Calendar.IsTradingDay(req.On)

	if req.Type == MutualFund {
		return e.fundValuation(req, closed)
	}
	if closed {
		return e.bracketValuation(req)
	}
	return e.sessionValuation(req)
}

// fundValuation prices a mutual fund. Funds publish a single end-of-day NAV,
// so only one date is ever queried: the target date itself, or when the
// market was closed, the last trading day before it (the last NAV actually
// published).
func (e *Engine) fundValuation(req Request, closed bool) (Result, error) {
	day := req.On
	if closed {
		day = e.Calendar.Previous(req.On)
	}

	bar, ok, err := e.Prices.DailyBar(req.Ticker, day)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Status: NoData, Note: noteNoData}, nil
	}

	closePrice := roundTo(bar.Close, req.Precision)
	note := "Mutual Fund - Using date of death closing price"
	if closed {
		note = fmt.Sprintf("Mutual Fund - Market closed on date of death, using last published NAV of %s", day)
	}
	return Result{
		Status: Priced,
		Price:  closePrice,
		Note:   note,
		Fund:   &FundDetail{Close: closePrice},
	}, nil
}

// sessionValuation prices a stock or ETF on an ordinary trading day: the
// average of the session high and low. The extremes are rounded to the
// request precision before averaging; rounding after averaging can land on a
// different final cent, and the rounded inputs are what the detail payload
// must expose.
func (e *Engine) sessionValuation(req Request) (Result, error) {
	bar, ok, err := e.Prices.DailyBar(req.Ticker, req.On)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Status: NoData, Note: noteNoData}, nil
	}

	high := roundTo(bar.High, req.Precision)
	low := roundTo(bar.Low, req.Precision)
	price := roundTo(high.Add(low).Div(two), req.Precision)

	return Result{
		Status: Priced,
		Price:  price,
		Note:   "Regular trading day price",
		Session: &SessionDetail{
			High:  high,
			Low:   low,
			Close: roundTo(bar.Close, req.Precision),
		},
	}, nil
}

// bracketValuation prices a stock or ETF when the market was closed on the
// target date: the average of the mid prices of the nearest trading days on
// either side. All four extremes are rounded individually first, then the
// two per-day midpoints are averaged and the result rounded once more.
func (e *Engine) bracketValuation(req Request) (Result, error) {
	priorDay := e.Calendar.Previous(req.On)
	nextDay := e.Calendar.Next(req.On)

	priorBar, priorOK, err := e.Prices.DailyBar(req.Ticker, priorDay)
	if err != nil {
		return Result{}, err
	}
	nextBar, nextOK, err := e.Prices.DailyBar(req.Ticker, nextDay)
	if err != nil {
		return Result{}, err
	}
	if !priorOK || !nextOK {
		return Result{Status: NoData, Note: noteNoDataRange}, nil
	}

	p := req.Precision
	priorHigh, priorLow := roundTo(priorBar.High, p), roundTo(priorBar.Low, p)
	nextHigh, nextLow := roundTo(nextBar.High, p), roundTo(nextBar.Low, p)

	priorMid := priorHigh.Add(priorLow).Div(two)
	nextMid := nextHigh.Add(nextLow).Div(two)
	price := roundTo(priorMid.Add(nextMid).Div(two), p)

	return Result{
		Status: Priced,
		Price:  price,
		Note:   fmt.Sprintf("Market closed on date of death - Average of %s and %s prices", priorDay, nextDay),
		Bracket: &BracketDetail{
			PriorDay:   priorDay,
			PriorHigh:  priorHigh,
			PriorLow:   priorLow,
			PriorClose: roundTo(priorBar.Close, p),
			NextDay:    nextDay,
			NextHigh:   nextHigh,
			NextLow:    nextLow,
			NextClose:  roundTo(nextBar.Close, p),
		},
	}, nil
}
