package strtime

import (
	"strings"
	"time"

	"datefmt/internal/tokens"
)

// Strftime converts t to a string according to format.
//
// Each "%c" with a known code is replaced by the matching field of t; all
// other characters, unknown codes included, are copied as they are:
//
//	Strftime(time.Date(2009, time.June, 5, 9, 25, 22, 0, time.UTC), "%l %F %j%S %h:%i %a")
//	// "Friday June 5th 09:25 am"
//
// t is read as wall-clock time in its own location.
func Strftime(t time.Time, format string) string {
	var b strings.Builder
	b.Grow(len(format) + 16)

	last := 0
	for _, occ := range tokens.Scan(format) {
		if !occ.Known {
			continue
		}
		b.WriteString(format[last:occ.Offset])
		b.WriteString(directives[occ.Code].format(t))
		last = occ.Offset + 2
	}
	b.WriteString(format[last:])

	return b.String()
}

// Field returns the value of a single format code for t and whether the code is known.
func Field(t time.Time, code tokens.Code) (string, bool) {
	d, ok := directives[code]
	if !ok {
		return "", false
	}
	return d.format(t), true
}
