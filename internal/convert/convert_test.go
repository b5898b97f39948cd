package convert

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"3:59", 239 * time.Second},
		{"4:12", 252 * time.Second},
		{"42", 42 * time.Second},
		{"0:07", 7 * time.Second},
		{"1:03:20", 3800 * time.Second},
		{"  2:30 ", 150 * time.Second},
		{"abc", 0},
		{"", 0},
		{"1:2:3:4", 0},
		{"-1:30", 0},
		{"3:xy", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{239 * time.Second, "3:59"},
		{252 * time.Second, "4:12"},
		{42 * time.Second, "42"},
		{0, "0"},
		{3800 * time.Second, "1:03:20"},
		{7 * time.Second, "7"},
		{60 * time.Second, "1:00"},
		{3600 * time.Second, "1:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.input); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, s := range []string{"3:59", "4:12", "42", "1:03:20"} {
		t.Run(s, func(t *testing.T) {
			d := ParseDuration(s)
			if got := FormatDuration(d); ParseDuration(got) != d {
				t.Errorf("round trip of %q lost value: %q -> %v", s, got, ParseDuration(got))
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1990", 1990},
		{" 2003 ", 2003},
		{"abc", 0},
		{"", 0},
		{"-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseInt(tt.input); got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
