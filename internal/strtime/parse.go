package strtime

import (
	"time"

	"datefmt/internal/datebuilder"
	"datefmt/internal/tokens"
)

// Strptime parses value according to format and reports whether a date was found.
//
// Parsing succeeds when a year is found; the other fields default to
// January 1st, 00:00:00. The codes d, j, F, m, M, n, Y, a, A, g, G, h, H, i
// and s are recognized, the others are ignored.
//
// Codes are processed in the order they appear in format. Each one looks for
// its first match anywhere in what is left of value, and that text is cut out
// before the next code looks. A code without a match is skipped. Separators in
// format are never compared with value, so "05 / 05 / 2009" parses with
// "%m/%d/%Y".
func Strptime(value, format string) (time.Time, bool) {
	b := datebuilder.New()
	rest := value

	for _, occ := range tokens.Scan(format) {
		if !occ.Known {
			continue
		}
		rule := directives[occ.Code].parse
		if rule == nil {
			continue
		}

		loc := rule.pattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		rule.assign(b, rest[start:end])
		rest = rest[:start] + rest[end:]
	}

	return b.Date()
}

// Convert parses value with inFormat and formats the result with outFormat.
// ok is false when value holds no date.
func Convert(value, inFormat, outFormat string) (string, bool) {
	t, ok := Strptime(value, inFormat)
	if !ok {
		return "", false
	}
	return Strftime(t, outFormat), true
}
