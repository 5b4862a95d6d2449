package calendar

import (
	"time"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

// marketHolidays returns the NYSE full-closure holidays for a given year.
func marketHolidays(year int) []date.Date {
	holidays := make([]date.Date, 0, 10)

	// New Year's Day - Jan 1. When Jan 1 falls on a Saturday the observance
	// would land in the prior year; the exchange does not observe it at all
	// (it was open on 2021-12-31). Sunday is observed on Monday as usual.
	newYear := date.New(year, time.January, 1)
	if newYear.Weekday() != time.Saturday {
		holidays = append(holidays, observed(newYear))
	}

	// Martin Luther King Jr. Day - 3rd Monday in January
	holidays = append(holidays, nthWeekday(year, time.January, time.Monday, 3))

	// Presidents Day - 3rd Monday in February
	holidays = append(holidays, nthWeekday(year, time.February, time.Monday, 3))

	// Good Friday - Friday before Easter
	holidays = append(holidays, goodFriday(year))

	// Memorial Day - Last Monday in May
	holidays = append(holidays, lastWeekday(year, time.May, time.Monday))

	// Juneteenth - June 19 (observed on nearest weekday). The NYSE first
	// closed for it in 2022; June 19 was a regular session before that, and a
	// historical valuation must keep treating it as one.
	if year >= 2022 {
		holidays = append(holidays, observed(date.New(year, time.June, 19)))
	}

	// Independence Day - July 4 (observed on nearest weekday)
	holidays = append(holidays, observed(date.New(year, time.July, 4)))

	// Labor Day - 1st Monday in September
	holidays = append(holidays, nthWeekday(year, time.September, time.Monday, 1))

	// Thanksgiving - 4th Thursday in November
	holidays = append(holidays, nthWeekday(year, time.November, time.Thursday, 4))

	// Christmas - Dec 25 (observed on nearest weekday)
	holidays = append(holidays, observed(date.New(year, time.December, 25)))

	return holidays
}

// observed moves a holiday to the nearest weekday if it falls on a weekend:
// Saturday is observed on Friday, Sunday on Monday.
func observed(d date.Date) date.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.Add(-1)
	case time.Sunday:
		return d.Add(1)
	default:
		return d
	}
}

// nthWeekday returns the nth occurrence of a weekday in a given month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) date.Date {
	d := date.New(year, month, 1)
	offset := int(weekday - d.Weekday())
	if offset < 0 {
		offset += 7
	}
	return d.Add(offset + (n-1)*7)
}

// lastWeekday returns the last occurrence of a weekday in a given month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) date.Date {
	d := date.New(year, month+1, 0) // last day of the month
	offset := int(d.Weekday() - weekday)
	if offset < 0 {
		offset += 7
	}
	return d.Add(-offset)
}

// easter returns Easter Sunday for a given year, using the Gregorian computus.
func easter(year int) date.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return date.New(year, time.Month(month), day)
}

// goodFriday returns the Friday before Easter Sunday.
func goodFriday(year int) date.Date {
	return easter(year).Add(-2)
}
