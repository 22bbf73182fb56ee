package stamp

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultGranularity is the rounding step, in minutes, used for corrections.
const DefaultGranularity = 15

// Time is a minute-resolution duration or clock time.
type Time int

// Add returns t + o.
func (t Time) Add(o Time) Time { return t + o }

// Sub returns t - o. The result may be negative.
func (t Time) Sub(o Time) Time { return t - o }

// FloorDiv divides t by n rounding toward negative infinity.
func (t Time) FloorDiv(n int) Time {
	q := int(t) / n
	if (int(t)%n != 0) && ((int(t) < 0) != (n < 0)) {
		q--
	}
	return Time(q)
}

// Nearest rounds t to the nearest multiple of n minutes, halves to even.
func (t Time) Nearest(n int) Time {
	return Time(int(math.RoundToEven(float64(t)/float64(n))) * n)
}

// Clock formats t as H:MM.
func (t Time) Clock() string {
	return fmt.Sprintf("%d:%02d", int(t)/60, int(t)%60)
}

// Hours formats t as decimal hours with two digits.
func (t Time) Hours() string {
	return fmt.Sprintf("%.2f", float64(t)/60)
}

// Both formats t as "H:MM -- h.hh".
func (t Time) Both() string {
	return t.Clock() + " -- " + t.Hours()
}

// ParseClock parses an HHMM (or HMM) string such as "0815" or "810".
// The last two digits are minutes, the rest hours.
func ParseClock(s string) (Time, error) {
	if len(s) < 3 {
		return 0, fmt.Errorf("invalid time %q: want HHMM", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid time %q: want HHMM", s)
		}
	}
	h, err := strconv.Atoi(s[:len(s)-2])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	m, _ := strconv.Atoi(s[len(s)-2:])
	if m >= 60 {
		return 0, fmt.Errorf("invalid time %q: minutes out of range", s)
	}
	return Time(h*60 + m), nil
}
