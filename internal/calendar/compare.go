package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Depth selects how many fields Equal compares, from the year downwards.
type Depth int

const (
	DepthYear Depth = iota + 1
	DepthMonth
	DepthDay
	DepthHour
	DepthMinute
	DepthSecond
	// DepthInstant compares the underlying instants.
	DepthInstant
)

// DefaultDepth is used when no depth is given.
const DefaultDepth = DepthMinute

var depthNames = map[string]Depth{
	"year":    DepthYear,
	"month":   DepthMonth,
	"day":     DepthDay,
	"hour":    DepthHour,
	"minute":  DepthMinute,
	"second":  DepthSecond,
	"instant": DepthInstant,
}

// ParseDepth maps a depth name such as "day" to its Depth. An empty name yields DefaultDepth.
func ParseDepth(name string) (Depth, error) {
	if name == "" {
		return DefaultDepth, nil
	}
	depth, ok := depthNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown depth %q", name)
	}
	return depth, nil
}

func (d Depth) String() string {
	for name, depth := range depthNames {
		if depth == d {
			return name
		}
	}
	return fmt.Sprintf("Depth(%d)", int(d))
}

// Equal reports whether a and b agree on every wall-clock field up to depth.
// A depth beyond DepthSecond compares instants; a depth below 1 means DefaultDepth.
func Equal(a, b time.Time, depth Depth) bool {
	if depth < DepthYear {
		depth = DefaultDepth
	}
	if depth > DepthSecond {
		return a.Equal(b)
	}

	levels := [...]bool{
		a.Year() == b.Year(),
		a.Month() == b.Month(),
		a.Day() == b.Day(),
		a.Hour() == b.Hour(),
		a.Minute() == b.Minute(),
		a.Second() == b.Second(),
	}

	for i := 0; i < int(depth); i++ {
		if !levels[i] {
			return false
		}
	}
	return true
}
