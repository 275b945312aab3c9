// Package datebuilder accumulates parsed date fields and turns them into a time.Time.
package datebuilder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field identifies a numeric date component.
type Field int

const (
	Year Field = iota
	Month // zero-based, 0 is January
	Day
	Hours
	Minutes
	Seconds

	fieldCount
)

var fieldKeys = [fieldCount]string{"year", "month", "day", "hours", "minutes", "seconds"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldKeys[f]
}

// defaults applied by Date for every field but Year.
var defaults = [fieldCount]int{Month: 0, Day: 1, Hours: 0, Minutes: 0, Seconds: 0}

// HourMode tells whether parsed hours are ante or post meridiem.
type HourMode int

const (
	HourModeUnset HourMode = iota
	AM
	PM
)

func (m HourMode) String() string {
	switch m {
	case AM:
		return "am"
	case PM:
		return "pm"
	default:
		return ""
	}
}

// ParamErrorType represents the type of parameter error.
type ParamErrorType string

const (
	UnknownKey   ParamErrorType = "UNKNOWN_KEY"
	InvalidValue ParamErrorType = "INVALID_VALUE"
)

// ParamError is returned by SetParam for keys or values it cannot use.
type ParamError struct {
	Type  ParamErrorType
	Key   string
	Value string
}

func (e *ParamError) Error() string {
	switch e.Type {
	case UnknownKey:
		return fmt.Sprintf("unknown date parameter %q", e.Key)
	case InvalidValue:
		return fmt.Sprintf("invalid value %q for date parameter %q", e.Value, e.Key)
	default:
		return fmt.Sprintf("date parameter error: %s=%s", e.Key, e.Value)
	}
}

// Builder collects date fields during a single parse.
//
// Hours and the hour mode may arrive in either order; whichever comes second
// converts the hours to the 24-hour clock.
type Builder struct {
	values [fieldCount]int
	set    [fieldCount]bool
	mode   HourMode
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Set assigns a numeric field. Setting Hours while an hour mode is present
// converts the value to the 24-hour clock.
func (b *Builder) Set(field Field, value int) {
	if field < 0 || field >= fieldCount {
		return
	}
	b.values[field] = value
	b.set[field] = true

	if field == Hours && b.mode != HourModeUnset {
		b.reconcile()
	}
}

// SetHourMode assigns the hour mode from "am" or "pm" in any case; any other
// value clears it. Setting a mode while hours are present converts them to
// the 24-hour clock.
func (b *Builder) SetHourMode(mode string) {
	switch strings.ToLower(mode) {
	case "am":
		b.mode = AM
	case "pm":
		b.mode = PM
	default:
		b.mode = HourModeUnset
		return
	}

	if b.set[Hours] {
		b.reconcile()
	}
}

// SetParam assigns a field by key: year, month, day, hours, minutes, seconds
// or hourMode. Numeric keys take a decimal value.
func (b *Builder) SetParam(key, value string) error {
	if key == "hourMode" {
		b.SetHourMode(value)
		return nil
	}

	for f, k := range fieldKeys {
		if k != key {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return &ParamError{Type: InvalidValue, Key: key, Value: value}
		}
		b.Set(Field(f), n)
		return nil
	}

	return &ParamError{Type: UnknownKey, Key: key, Value: value}
}

// reconcile moves 12-hour values to the 24-hour clock.
// It is idempotent: 12 am becomes 0 and only hours before noon gain 12 in pm.
func (b *Builder) reconcile() {
	hours := b.values[Hours]
	switch b.mode {
	case AM:
		if hours == 12 {
			hours = 0
		}
	case PM:
		if hours < 12 {
			hours += 12
		}
	}
	b.values[Hours] = hours
}

// Get returns the value of a field and whether it was set.
func (b *Builder) Get(field Field) (int, bool) {
	if field < 0 || field >= fieldCount {
		return 0, false
	}
	return b.values[field], b.set[field]
}

// HourMode returns the current hour mode.
func (b *Builder) HourMode() HourMode {
	return b.mode
}

// Date builds the accumulated date. Unset fields default to January 1st,
// 00:00:00. Without a year there is no date and ok is false.
func (b *Builder) Date() (date time.Time, ok bool) {
	if !b.set[Year] {
		return time.Time{}, false
	}

	var v [fieldCount]int
	for f := Field(0); f < fieldCount; f++ {
		v[f] = defaults[f]
		if b.set[f] {
			v[f] = b.values[f]
		}
	}

	return time.Date(v[Year], time.Month(v[Month]+1), v[Day], v[Hours], v[Minutes], v[Seconds], 0, time.UTC), true
}
