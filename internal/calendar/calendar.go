// Package calendar holds the calendar arithmetic shared by formatting and parsing.
package calendar

import (
	"math"
	"time"
)

const (
	millisecondsPerSecond = int64(1e3)
	millisecondsPerDay    = int64(864e5)
	millisecondsPerWeek   = int64(6048e5)
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear returns true if the given year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || (year%400 == 0)
}

// DaysInMonth returns the number of days in the given zero-based month of year.
// It returns 0 for a month outside 0-11.
func DaysInMonth(year, month int) int {
	if month < 0 || month > 11 {
		return 0
	}
	if month == 1 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// naive drops the location of t, keeping its wall clock.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// MillisecondsOfYear returns the milliseconds elapsed since January 1st 00:00 of t's year.
func MillisecondsOfYear(t time.Time) int64 {
	wall := naive(t)
	start := time.Date(wall.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return wall.Sub(start).Milliseconds()
}

// SecondsOfYear returns the seconds elapsed since January 1st of t's year, rounded up.
func SecondsOfYear(t time.Time) int64 {
	return ceilDiv(MillisecondsOfYear(t), millisecondsPerSecond)
}

// DayOfYear returns the day of the year of t, counting from 1.
//
// Any time past midnight rounds up to the next day before the +1, so only
// exact midnights yield the conventional ordinal.
func DayOfYear(t time.Time) int {
	return int(ceilDiv(MillisecondsOfYear(t), millisecondsPerDay)) + 1
}

// WeekOfYear returns the ISO-8601 week number of t.
func WeekOfYear(t time.Time) int {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// the Thursday of the ISO week decides which year the week belongs to
	offset := -((int(date.Weekday()) + 6) % 7) + 3
	thursday := date.AddDate(0, 0, offset)

	// January 4th is always in week 1
	firstWeek := time.Date(thursday.Year(), time.January, 4, 0, 0, 0, 0, time.UTC)

	weeks := float64(thursday.Sub(firstWeek).Milliseconds()) / float64(millisecondsPerWeek)
	return int(math.Round(weeks)) + 1
}

// UnixSeconds returns the seconds since the Unix epoch, rounded up.
func UnixSeconds(t time.Time) int64 {
	return ceilDiv(t.UnixMilli(), millisecondsPerSecond)
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
