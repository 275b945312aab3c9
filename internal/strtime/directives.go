// Package strtime formats dates into strings and parses them back using
// "%c" format codes such as "%Y-%m-%d %H:%i:%s".
package strtime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"datefmt/internal/calendar"
	"datefmt/internal/datebuilder"
	"datefmt/internal/tokens"
)

// directive is the behavior of one format code in both directions.
type directive struct {
	format formatFunc
	parse  *parseRule // nil for format-only codes
}

type formatFunc func(t time.Time) string

// parseRule finds a value in the remaining input and records it.
type parseRule struct {
	pattern *regexp.Regexp
	assign  func(b *datebuilder.Builder, match string)
}

var (
	dayPattern      = regexp.MustCompile(`(0[1-9]|[1-2][0-9]|3[0-1]|[1-9])`)
	monthPattern    = regexp.MustCompile(`(0[1-9]|1[0-2]|[1-9])`)
	yearPattern     = regexp.MustCompile(`([0-9]{4})`)
	meridiemPattern = regexp.MustCompile(`(am|AM|pm|PM)`)
	hourPattern     = regexp.MustCompile(`(2[0-4]|[0-1][0-9]|[1-9])`)
	sixtyPattern    = regexp.MustCompile(`([0-5][0-9])`)

	monthNamePattern     = alternation(tokens.Months[:])
	abbrMonthNamePattern = alternation(tokens.AbbrMonths[:])
)

func alternation(names []string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(` + strings.Join(quoted, "|") + `)`)
}

func numeric(field datebuilder.Field, offset int) func(b *datebuilder.Builder, match string) {
	return func(b *datebuilder.Builder, match string) {
		n, err := strconv.Atoi(match)
		if err != nil {
			return
		}
		b.Set(field, n+offset)
	}
}

func monthName(abbr bool) func(b *datebuilder.Builder, match string) {
	return func(b *datebuilder.Builder, match string) {
		if month := tokens.MonthIndex(match, abbr); month >= 0 {
			b.Set(datebuilder.Month, month)
		}
	}
}

func meridiem(b *datebuilder.Builder, match string) {
	b.SetHourMode(match)
}

var (
	dayRule      = &parseRule{dayPattern, numeric(datebuilder.Day, 0)}
	monthRule    = &parseRule{monthPattern, numeric(datebuilder.Month, -1)}
	hourRule     = &parseRule{hourPattern, numeric(datebuilder.Hours, 0)}
	meridiemRule = &parseRule{meridiemPattern, meridiem}
)

var directives = map[tokens.Code]directive{
	// day
	'd': {func(t time.Time) string { return zeroPad(t.Day()) }, dayRule},
	'D': {func(t time.Time) string { return tokens.WeekdayName(int(t.Weekday()), true) }, nil},
	'j': {func(t time.Time) string { return strconv.Itoa(t.Day()) }, dayRule},
	'l': {func(t time.Time) string { return tokens.WeekdayName(int(t.Weekday()), false) }, nil},
	'N': {formatISOWeekday, nil},
	'S': {func(t time.Time) string { return ordinalSuffix(t.Day()) }, nil},
	'w': {func(t time.Time) string { return strconv.Itoa(int(t.Weekday())) }, nil},
	'z': {func(t time.Time) string { return strconv.Itoa(calendar.DayOfYear(t)) }, nil},

	// week
	'W': {func(t time.Time) string { return strconv.Itoa(calendar.WeekOfYear(t)) }, nil},

	// month
	'F': {func(t time.Time) string { return tokens.MonthName(int(t.Month())-1, false) },
		&parseRule{monthNamePattern, monthName(false)}},
	'm': {func(t time.Time) string { return zeroPad(int(t.Month())) }, monthRule},
	'M': {func(t time.Time) string { return tokens.MonthName(int(t.Month())-1, true) },
		&parseRule{abbrMonthNamePattern, monthName(true)}},
	'n': {func(t time.Time) string { return strconv.Itoa(int(t.Month())) }, monthRule},
	't': {func(t time.Time) string { return strconv.Itoa(calendar.DaysInMonth(t.Year(), int(t.Month())-1)) }, nil},

	// year
	'L': {formatLeapYear, nil},
	'y': {func(t time.Time) string { return zeroPad(t.Year() % 100) }, nil},
	'Y': {func(t time.Time) string { return strconv.Itoa(t.Year()) },
		&parseRule{yearPattern, numeric(datebuilder.Year, 0)}},

	// time
	'a': {func(t time.Time) string { return meridiemOf(t) }, meridiemRule},
	'A': {func(t time.Time) string { return strings.ToUpper(meridiemOf(t)) }, meridiemRule},
	'g': {func(t time.Time) string { return strconv.Itoa(hour12(t)) }, hourRule},
	'G': {func(t time.Time) string { return strconv.Itoa(t.Hour()) }, hourRule},
	'h': {func(t time.Time) string { return zeroPad(hour12(t)) }, hourRule},
	'H': {func(t time.Time) string { return zeroPad(t.Hour()) }, hourRule},
	'i': {func(t time.Time) string { return zeroPad(t.Minute()) },
		&parseRule{sixtyPattern, numeric(datebuilder.Minutes, 0)}},
	's': {func(t time.Time) string { return zeroPad(t.Second()) },
		&parseRule{sixtyPattern, numeric(datebuilder.Seconds, 0)}},

	// full date/time
	'U': {func(t time.Time) string { return strconv.FormatInt(calendar.UnixSeconds(t), 10) }, nil},
}

func zeroPad(n int) string {
	s := strconv.Itoa(n)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func formatISOWeekday(t time.Time) string {
	if t.Weekday() == time.Sunday {
		return "7"
	}
	return strconv.Itoa(int(t.Weekday()))
}

// ordinalSuffix returns the English suffix for a day of the month.
// 11, 12 and 13 take "th".
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func formatLeapYear(t time.Time) string {
	if calendar.IsLeapYear(t.Year()) {
		return "1"
	}
	return "0"
}

func meridiemOf(t time.Time) string {
	if t.Hour() < 12 {
		return "am"
	}
	return "pm"
}

func hour12(t time.Time) int {
	hours := t.Hour()
	if hours > 12 {
		hours -= 12
	} else if hours == 0 {
		hours = 12
	}
	return hours
}
