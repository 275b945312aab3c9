package tokens

import (
	"reflect"
	"strings"
	"testing"
)

func TestTablesAreIndexAligned(t *testing.T) {
	for i := range Weekdays {
		if !strings.HasPrefix(Weekdays[i], AbbrWeekdays[i]) {
			t.Errorf("weekday %d: %q does not start with %q", i, Weekdays[i], AbbrWeekdays[i])
		}
	}
	for i := range Months {
		if !strings.HasPrefix(Months[i], AbbrMonths[i]) {
			t.Errorf("month %d: %q does not start with %q", i, Months[i], AbbrMonths[i])
		}
	}
}

func TestNameLookups(t *testing.T) {
	if got := WeekdayName(0, false); got != "Sunday" {
		t.Errorf("WeekdayName(0) = %q", got)
	}
	if got := WeekdayName(5, true); got != "Fri" {
		t.Errorf("WeekdayName(5, abbr) = %q", got)
	}
	if got := WeekdayName(7, false); got != "" {
		t.Errorf("WeekdayName(7) = %q, want empty", got)
	}
	if got := MonthName(5, false); got != "June" {
		t.Errorf("MonthName(5) = %q", got)
	}
	if got := MonthName(11, true); got != "Dec" {
		t.Errorf("MonthName(11, abbr) = %q", got)
	}
	if got := MonthName(-1, true); got != "" {
		t.Errorf("MonthName(-1) = %q, want empty", got)
	}
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name string
		abbr bool
		want int
	}{
		{"January", false, 0},
		{"May", false, 4},
		{"May", true, 4},
		{"Sep", true, 8},
		{"september", false, -1},
		{"Sept", true, -1},
	}

	for _, tt := range tests {
		if got := MonthIndex(tt.name, tt.abbr); got != tt.want {
			t.Errorf("MonthIndex(%q, %v) = %d, want %d", tt.name, tt.abbr, got, tt.want)
		}
	}
}

func TestParseCapability(t *testing.T) {
	for _, c := range "djFmMnYaAgGhHis" {
		if !IsParse(Code(c)) {
			t.Errorf("expected %c to be parseable", c)
		}
	}
	for _, c := range "DlNSwzWtLyU" {
		if IsParse(Code(c)) {
			t.Errorf("expected %c to be format only", c)
		}
		if !IsFormat(Code(c)) {
			t.Errorf("expected %c to be formattable", c)
		}
	}
	if IsFormat('Q') || IsParse('Q') {
		t.Error("expected Q to be outside the alphabet")
	}
}

func TestAllIsGroupedAndComplete(t *testing.T) {
	infos := All()
	if len(infos) != 26 {
		t.Fatalf("expected 26 codes, got %d", len(infos))
	}
	if infos[0].Category != CategoryDay {
		t.Errorf("expected days first, got %s", infos[0].Category)
	}
	if last := infos[len(infos)-1]; last.Code != 'U' {
		t.Errorf("expected U last, got %c", last.Code)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		format string
		want   []Occurrence
	}{
		{"", nil},
		{"plain", nil},
		{"%Y-%m", []Occurrence{{'Y', 0, true}, {'m', 3, true}}},
		{"%%d", []Occurrence{{'%', 0, false}, {'d', 1, true}}},
		{"%Q %d", []Occurrence{{'Q', 0, false}, {'d', 3, true}}},
		{"trailing %", nil},
	}

	for _, tt := range tests {
		if got := Scan(tt.format); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Scan(%q) = %+v, want %+v", tt.format, got, tt.want)
		}
	}
}
