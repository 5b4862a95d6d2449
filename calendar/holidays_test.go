package calendar

import (
	"testing"
	"time"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

func TestEaster(t *testing.T) {
	testCases := []struct {
		year int
		want string
	}{
		{2023, "2023-04-09"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
	}
	for _, tc := range testCases {
		if got := easter(tc.year); got.String() != tc.want {
			t.Errorf("easter(%d) = %s, want %s", tc.year, got, tc.want)
		}
	}
}

func TestGoodFriday(t *testing.T) {
	if got := goodFriday(2025); got.String() != "2025-04-18" {
		t.Errorf("goodFriday(2025) = %s, want 2025-04-18", got)
	}
}

func TestNthWeekday(t *testing.T) {
	// Thanksgiving: 4th Thursday of November.
	if got := nthWeekday(2024, time.November, time.Thursday, 4); got.String() != "2024-11-28" {
		t.Errorf("nthWeekday() = %s, want 2024-11-28", got)
	}
	// MLK day: 3rd Monday of January.
	if got := nthWeekday(2025, time.January, time.Monday, 3); got.String() != "2025-01-20" {
		t.Errorf("nthWeekday() = %s, want 2025-01-20", got)
	}
}

func TestLastWeekday(t *testing.T) {
	// Memorial day: last Monday of May.
	if got := lastWeekday(2025, time.May, time.Monday); got.String() != "2025-05-26" {
		t.Errorf("lastWeekday() = %s, want 2025-05-26", got)
	}
}

func TestObserved(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"Saturday moves to Friday", "2026-07-04", "2026-07-03"},
		{"Sunday moves to Monday", "2022-12-25", "2022-12-26"},
		{"Weekday stays", "2025-12-25", "2025-12-25"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := observed(date.MustParse(tc.in)); got.String() != tc.want {
				t.Errorf("observed(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestMarketHolidays2025(t *testing.T) {
	want := []string{
		"2025-01-01", // New Year's Day
		"2025-01-20", // MLK Day
		"2025-02-17", // Presidents Day
		"2025-04-18", // Good Friday
		"2025-05-26", // Memorial Day
		"2025-06-19", // Juneteenth
		"2025-07-04", // Independence Day
		"2025-09-01", // Labor Day
		"2025-11-27", // Thanksgiving
		"2025-12-25", // Christmas
	}
	got := marketHolidays(2025)
	if len(got) != len(want) {
		t.Fatalf("marketHolidays(2025) returned %d holidays, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("marketHolidays(2025)[%d] = %s, want %s", i, got[i], w)
		}
	}
}

func TestJuneteenthStartsIn2022(t *testing.T) {
	// The NYSE first closed for Juneteenth in 2022. Before that, June 19 (or
	// its observed weekday) was a regular session; a valuation dated there
	// must use the actual session prices, not a bracket average.
	nyse := NewNYSE()
	for _, day := range []string{
		"2015-06-19", // Friday, regular session
		"2020-06-19", // Friday, regular session
		"2021-06-18", // Friday; June 19 2021 was a Saturday
	} {
		if !nyse.IsTradingDay(date.MustParse(day)) {
			t.Errorf("IsTradingDay(%s) = false, want true (Juneteenth was not observed before 2022)", day)
		}
	}
	for _, day := range []string{
		"2022-06-20", // Monday; June 19 2022 was a Sunday
		"2023-06-19", // Monday
	} {
		if nyse.IsTradingDay(date.MustParse(day)) {
			t.Errorf("IsTradingDay(%s) = true, want false (Juneteenth closure)", day)
		}
	}
}

func TestNewYearOnSaturdayIsNotObserved(t *testing.T) {
	// Jan 1 2022 was a Saturday: the exchange was open on 2021-12-31
	// and there is no New Year closure in 2022 at all.
	for _, h := range marketHolidays(2022) {
		if h == date.New(2021, time.December, 31) || h == date.New(2022, time.January, 1) {
			t.Errorf("marketHolidays(2022) unexpectedly contains %s", h)
		}
	}
}
