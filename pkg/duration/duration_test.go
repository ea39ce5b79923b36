package duration

import (
	"errors"
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		token string
		want  time.Duration
	}{
		{"1s", time.Second},
		{"45s", 45 * time.Second},
		{"1m", time.Minute},
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"12h", 12 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"28d", 28 * 24 * time.Hour},       // exactly at the ceiling
		{"672h", 28 * 24 * time.Hour},      // ceiling expressed in hours
		{"2419200s", 28 * 24 * time.Hour},  // ceiling expressed in seconds
		{"40320m", 28 * 24 * time.Hour},    // ceiling expressed in minutes
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTooLong(t *testing.T) {
	tests := []string{
		"29d",
		"30d",
		"673h",
		"2419201s", // one second over the ceiling
		"40321m",
		"99999999999999999999s", // overflows int64 digits
	}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			_, err := Parse(token)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", token)
			}
			if !errors.Is(err, ErrTooLong) && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrTooLong or ErrInvalidFormat", token, err)
			}
		})
	}

	if _, err := Parse("29d"); !errors.Is(err, ErrTooLong) {
		t.Errorf("Parse(29d) error = %v, want ErrTooLong", err)
	}
}

func TestParseInvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"10",       // missing unit
		"m",        // missing value
		"10x",      // unknown unit
		"10 m",     // embedded space
		"m10",      // unit first
		"-5m",      // signed
		"+5m",      // signed
		"1.5h",     // decimal
		"ten m",    // non-digit value
		"10mm",     // double unit
		"10m ",     // trailing space
		"10M",      // uppercase unit
	}

	for _, token := range tests {
		t.Run("token_"+token, func(t *testing.T) {
			_, err := Parse(token)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", token, err)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{time.Second, "1 second"},
		{45 * time.Second, "45 seconds"},
		{time.Minute, "1 minute"},
		{30 * time.Minute, "30 minutes"},
		{time.Hour, "1 hour"},
		{12 * time.Hour, "12 hours"},
		{24 * time.Hour, "1 day"},
		{2 * 24 * time.Hour, "2 days"},
		{28 * 24 * time.Hour, "28 days"},
		{90 * time.Second, "90 seconds"}, // not a whole minute
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Humanize(tt.d); got != tt.want {
				t.Errorf("Humanize(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
