package datebuilder

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWithoutYearIsAbsent(t *testing.T) {
	b := New()
	b.Set(Month, 4)
	b.Set(Day, 5)

	date, ok := b.Date()
	assert.False(t, ok)
	assert.True(t, date.IsZero())
}

func TestDateFillsDefaults(t *testing.T) {
	b := New()
	b.Set(Year, 2009)

	date, ok := b.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestDateUsesAllFields(t *testing.T) {
	b := New()
	b.Set(Year, 2009)
	b.Set(Month, 4)
	b.Set(Day, 5)
	b.Set(Hours, 9)
	b.Set(Minutes, 25)
	b.Set(Seconds, 22)

	date, ok := b.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2009, time.May, 5, 9, 25, 22, 0, time.UTC), date)
}

func TestHourModeReconciliation(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(b *Builder)
		wantHours int
	}{
		{"pm then 3", func(b *Builder) { b.SetHourMode("pm"); b.Set(Hours, 3) }, 15},
		{"3 then pm", func(b *Builder) { b.Set(Hours, 3); b.SetHourMode("PM") }, 15},
		{"12 then am", func(b *Builder) { b.Set(Hours, 12); b.SetHourMode("am") }, 0},
		{"am then 12", func(b *Builder) { b.SetHourMode("AM"); b.Set(Hours, 12) }, 0},
		{"am leaves morning hours", func(b *Builder) { b.Set(Hours, 9); b.SetHourMode("am") }, 9},
		{"12 then pm stays noon", func(b *Builder) { b.Set(Hours, 12); b.SetHourMode("pm") }, 12},
		{"pm twice applies once", func(b *Builder) { b.Set(Hours, 3); b.SetHourMode("pm"); b.SetHourMode("pm") }, 15},
		{"24-hour value with pm", func(b *Builder) { b.SetHourMode("pm"); b.Set(Hours, 15) }, 15},
		{"no mode", func(b *Builder) { b.Set(Hours, 3) }, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.apply(b)
			hours, ok := b.Get(Hours)
			require.True(t, ok)
			assert.Equal(t, tt.wantHours, hours)
		})
	}
}

func TestSetHourModeNormalizesCase(t *testing.T) {
	b := New()
	b.SetHourMode("Pm")
	assert.Equal(t, PM, b.HourMode())
	assert.Equal(t, "pm", b.HourMode().String())

	b.SetHourMode("noon")
	assert.Equal(t, HourModeUnset, b.HourMode())
}

// Both assignment orders converge on the same 24-hour value.
func TestReconciliationIsOrderIndependent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hours-then-mode equals mode-then-hours", prop.ForAll(
		func(hours int, mode string) bool {
			first := New()
			first.Set(Hours, hours)
			first.SetHourMode(mode)

			second := New()
			second.SetHourMode(mode)
			second.Set(Hours, hours)

			h1, _ := first.Get(Hours)
			h2, _ := second.Get(Hours)
			return h1 == h2
		},
		gen.IntRange(0, 24),
		gen.OneConstOf("am", "AM", "pm", "PM"),
	))

	properties.Property("12-hour clock maps onto 0-23", prop.ForAll(
		func(hours int, mode string) bool {
			b := New()
			b.Set(Hours, hours)
			b.SetHourMode(mode)
			h, _ := b.Get(Hours)
			if mode == "am" {
				return h == hours%12
			}
			return h == hours%12+12
		},
		gen.IntRange(1, 12),
		gen.OneConstOf("am", "pm"),
	))

	properties.TestingRun(t)
}

func TestSetParam(t *testing.T) {
	b := New()
	require.NoError(t, b.SetParam("year", "2009"))
	require.NoError(t, b.SetParam("month", "4"))
	require.NoError(t, b.SetParam("hourMode", "PM"))
	require.NoError(t, b.SetParam("hours", "3"))

	date, ok := b.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2009, time.May, 1, 15, 0, 0, 0, time.UTC), date)
}

func TestSetParamErrors(t *testing.T) {
	b := New()

	err := b.SetParam("century", "20")
	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, UnknownKey, paramErr.Type)
	assert.Contains(t, err.Error(), "century")

	err = b.SetParam("day", "fifth")
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, InvalidValue, paramErr.Type)

	_, set := b.Get(Day)
	assert.False(t, set)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "hours", Hours.String())
	assert.Equal(t, "Field(9)", Field(9).String())
}
