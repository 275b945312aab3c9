package calendar

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIsLeapYearCenturyBoundaries(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2004, true},
		{1999, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2000, 1, 29},
		{1900, 1, 28},
		{2009, 0, 31},
		{2009, 3, 30},
		{2009, 11, 31},
		{2009, 12, 0},
		{2009, -1, 0},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

// Days in month agrees with what the time package normalizes to.
func TestDaysInMonthMatchesTimePackage(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("last day of month is DaysInMonth", prop.ForAll(
		func(year, month int) bool {
			// day 0 of the next month is the last day of this one
			last := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC)
			return last.Day() == DaysInMonth(year, month)
		},
		gen.IntRange(1, 9999),
		gen.IntRange(0, 11),
	))

	properties.Property("leap year iff 366 days", prop.ForAll(
		func(year int) bool {
			days := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
			return IsLeapYear(year) == (days == 366)
		},
		gen.IntRange(1, 9999),
	))

	properties.TestingRun(t)
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"thursday jan 1 2009", time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{"dec 31 2008 belongs to next year", time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC), 1},
		{"jan 1 2010 belongs to previous year", time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), 53},
		{"mid year", time.Date(2009, time.June, 5, 9, 25, 22, 0, time.UTC), 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOfYear(tt.date); got != tt.want {
				t.Errorf("WeekOfYear(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekOfYearMatchesISOWeek(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("WeekOfYear equals time.ISOWeek", prop.ForAll(
		func(days int, seconds int) bool {
			date := time.Date(1900, time.January, 1, 0, 0, seconds, 0, time.UTC).AddDate(0, 0, days)
			_, week := date.ISOWeek()
			return WeekOfYear(date) == week
		},
		gen.IntRange(0, 200*366),
		gen.IntRange(0, 86399),
	))

	properties.TestingRun(t)
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"midnight jan 1", time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{"midnight jan 2", time.Date(2009, time.January, 2, 0, 0, 0, 0, time.UTC), 2},
		{"past midnight rounds up", time.Date(2009, time.January, 1, 0, 0, 1, 0, time.UTC), 2},
		{"midnight dec 31 leap", time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC), 366},
		{"june 5 morning", time.Date(2009, time.June, 5, 9, 25, 22, 0, time.UTC), 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.date); got != tt.want {
				t.Errorf("DayOfYear(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestDayOfYearAtMidnightMatchesYearDay(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("midnight DayOfYear equals YearDay", prop.ForAll(
		func(days int) bool {
			date := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
			return DayOfYear(date) == date.YearDay()
		},
		gen.IntRange(0, 100*366),
	))

	properties.TestingRun(t)
}

func TestSecondsOfYearAndUnixSeconds(t *testing.T) {
	date := time.Date(2009, time.January, 1, 0, 1, 0, 500*int(time.Millisecond), time.UTC)
	if got := SecondsOfYear(date); got != 61 {
		t.Errorf("SecondsOfYear = %d, want 61", got)
	}
	if got := MillisecondsOfYear(date); got != 60500 {
		t.Errorf("MillisecondsOfYear = %d, want 60500", got)
	}
	if got, want := UnixSeconds(date), date.Unix()+1; got != want {
		t.Errorf("UnixSeconds = %d, want %d", got, want)
	}

	exact := time.Date(2009, time.June, 5, 9, 25, 22, 0, time.UTC)
	if got := UnixSeconds(exact); got != exact.Unix() {
		t.Errorf("UnixSeconds on whole second = %d, want %d", got, exact.Unix())
	}

	before := time.Date(1969, time.December, 31, 23, 59, 58, 500*int(time.Millisecond), time.UTC)
	if got := UnixSeconds(before); got != -1 {
		t.Errorf("UnixSeconds before epoch = %d, want -1", got)
	}
}

func TestWallClockIgnoresLocation(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	date := time.Date(2009, time.March, 1, 2, 0, 0, 0, zone)
	if got := DayOfYear(date); got != 61 {
		t.Errorf("DayOfYear in fixed zone = %d, want 61", got)
	}
}
