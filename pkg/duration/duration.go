// Package duration parses the compact duration tokens used by the mute
// command ("30s", "10m", "2h", "1d") into time.Duration values.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Max is the longest timeout Discord accepts (28 days).
const Max = 28 * 24 * time.Hour

var (
	// ErrInvalidFormat is returned when the token does not match <integer><unit>.
	ErrInvalidFormat = errors.New("duration: invalid format")
	// ErrTooLong is returned when the parsed duration exceeds Max.
	ErrTooLong = errors.New("duration: exceeds 28 day maximum")
)

var tokenPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

var units = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// Parse converts a token like "10m" or "2d" into a time.Duration.
// Valid units are s, m, h and d. Signs and decimals are rejected, and
// anything above 28 days is refused (exactly 28 days is accepted).
func Parse(token string) (time.Duration, error) {
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, ErrInvalidFormat
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		// Digits only but out of int64 range
		return 0, ErrInvalidFormat
	}

	d := time.Duration(value) * units[match[2]]
	if d > Max || d/units[match[2]] != time.Duration(value) {
		return 0, ErrTooLong
	}

	return d, nil
}

// Humanize renders a parsed duration as a phrase like "2 days" or
// "1 hour", using the largest unit that divides it exactly.
func Humanize(d time.Duration) string {
	type unit struct {
		size time.Duration
		name string
	}
	ordered := []unit{
		{24 * time.Hour, "day"},
		{time.Hour, "hour"},
		{time.Minute, "minute"},
		{time.Second, "second"},
	}

	for _, u := range ordered {
		if d >= u.size && d%u.size == 0 {
			n := d / u.size
			if n == 1 {
				return fmt.Sprintf("1 %s", u.name)
			}
			return fmt.Sprintf("%d %ss", n, u.name)
		}
	}
	return d.String()
}
