package board

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Units are checked in this order; a phrase naming both minutes and hours resolves to minutes.
var relativeUnits = []struct {
	name string
	size time.Duration
}{
	{"minute", time.Minute},
	{"hour", time.Hour},
	{"day", 24 * time.Hour},
}

// ParseRelativeTime turns phrases like "5 minutes ago" into an approximate instant
func ParseRelativeTime(text string) time.Time {
	return ParseRelativeTimeAt(text, time.Now())
}

// ParseRelativeTimeAt resolves text against now. Phrases without a known unit or a
// leading integer resolve to now, so they sort as the most recent.
func ParseRelativeTimeAt(text string, now time.Time) time.Time {
	for _, unit := range relativeUnits {
		if !strings.Contains(text, unit.name) {
			continue
		}
		first, _, _ := strings.Cut(text, " ")
		n, ok := leadingInt(first)
		if !ok {
			return now
		}
		limit := int64(math.MaxInt64 / unit.size)
		if n > limit {
			n = limit
		} else if n < -limit {
			n = -limit
		}
		return now.Add(-time.Duration(n) * unit.size)
	}
	return now
}

// leadingInt parses an optional sign followed by digits, ignoring anything after them
func leadingInt(token string) (int64, bool) {
	token = strings.TrimLeft(token, "\t\n\v\f\r")
	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}
	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	// out of range values come back saturated and are clamped by the caller
	n, err := strconv.ParseInt(token[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}
