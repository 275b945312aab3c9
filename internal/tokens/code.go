package tokens

import "sort"

// Code is the character following '%' in a format string.
type Code byte

// Category groups codes for listings.
type Category string

const (
	CategoryDay   Category = "Days"
	CategoryWeek  Category = "Week"
	CategoryMonth Category = "Month"
	CategoryYear  Category = "Year"
	CategoryTime  Category = "Time"
	CategoryFull  Category = "Full Date/Time"
)

// Info describes a single code of the alphabet.
type Info struct {
	Code        Code
	Category    Category
	Description string
	Parse       bool // whether the code is recognized when parsing
}

var alphabet = map[Code]Info{
	'd': {'d', CategoryDay, "Day of the month, 2 digits with leading zeros", true},
	'D': {'D', CategoryDay, "A textual representation of a day, three letters", false},
	'j': {'j', CategoryDay, "Day of the month without leading zeros", true},
	'l': {'l', CategoryDay, "A full textual representation of the day of the week", false},
	'N': {'N', CategoryDay, "ISO-8601 numeric representation of the day of the week", false},
	'S': {'S', CategoryDay, "English ordinal suffix for the day of the month (st, nd, rd or th)", false},
	'w': {'w', CategoryDay, "Numeric representation of the day of the week", false},
	'z': {'z', CategoryDay, "The day of the year", false},

	'W': {'W', CategoryWeek, "ISO-8601 week number of year, weeks starting on Monday", false},

	'F': {'F', CategoryMonth, "A full textual representation of a month, such as January or March", true},
	'm': {'m', CategoryMonth, "Numeric representation of a month, with leading zeros", true},
	'M': {'M', CategoryMonth, "A short textual representation of a month, three letters", true},
	'n': {'n', CategoryMonth, "Numeric representation of a month, without leading zeros", true},
	't': {'t', CategoryMonth, "Number of days in the given month", false},

	'L': {'L', CategoryYear, "Whether it's a leap year, 1 if it is, 0 otherwise", false},
	'y': {'y', CategoryYear, "A two digit representation of a year", false},
	'Y': {'Y', CategoryYear, "A full numeric representation of a year, 4 digits", true},

	'a': {'a', CategoryTime, "Lowercase Ante meridiem and Post meridiem", true},
	'A': {'A', CategoryTime, "Uppercase Ante meridiem and Post meridiem", true},
	'g': {'g', CategoryTime, "12-hour format of an hour without leading zeros", true},
	'G': {'G', CategoryTime, "24-hour format of an hour without leading zeros", true},
	'h': {'h', CategoryTime, "12-hour format of an hour with leading zeros", true},
	'H': {'H', CategoryTime, "24-hour format of an hour with leading zeros", true},
	'i': {'i', CategoryTime, "Minutes with leading zeros", true},
	's': {'s', CategoryTime, "Seconds, with leading zeros", true},

	'U': {'U', CategoryFull, "Seconds since the Unix Epoch (January 1 1970 00:00:00 GMT)", false},
}

// Lookup returns the description of c and whether c belongs to the alphabet.
func Lookup(c Code) (Info, bool) {
	info, ok := alphabet[c]
	return info, ok
}

// IsFormat reports whether c is substituted when formatting.
func IsFormat(c Code) bool {
	_, ok := alphabet[c]
	return ok
}

// IsParse reports whether c is consumed when parsing.
func IsParse(c Code) bool {
	return alphabet[c].Parse
}

// All returns every code, grouped by category in listing order.
func All() []Info {
	order := map[Category]int{
		CategoryDay: 0, CategoryWeek: 1, CategoryMonth: 2,
		CategoryYear: 3, CategoryTime: 4, CategoryFull: 5,
	}
	infos := make([]Info, 0, len(alphabet))
	for _, info := range alphabet {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Category != infos[j].Category {
			return order[infos[i].Category] < order[infos[j].Category]
		}
		return infos[i].Code < infos[j].Code
	})
	return infos
}

// Occurrence is a "%c" pair found in a format string.
type Occurrence struct {
	Code   Code
	Offset int  // byte offset of the '%'
	Known  bool // whether Code belongs to the alphabet
}

// Scan returns every '%' followed by a character, left to right.
// A '%' only pairs with the next character when that character is in the
// alphabet; otherwise the scan moves on by one byte, so "%%d" yields an
// unknown "%%" at 0 and a known "%d" at 1.
func Scan(format string) []Occurrence {
	var found []Occurrence
	for i := 0; i < len(format)-1; i++ {
		if format[i] != '%' {
			continue
		}
		c := Code(format[i+1])
		known := IsFormat(c)
		found = append(found, Occurrence{Code: c, Offset: i, Known: known})
		if known {
			i++
		}
	}
	return found
}
