package utils

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeNameLower(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Aïcha", "aicha"},
		{"  Chloé  ", "chloe"},
		{"JEAN-PIERRE", "jean-pierre"},
		{"Fatou   Ndiaye", "fatou ndiaye"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeNameLower(c.in); got != c.want {
			t.Errorf("NormalizeNameLower(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+41 79 123 45 67", "41791234567"},
		{"0041-79-123-45-67", "0041791234567"},
		{"(079) 123.45.67", "0791234567"},
		{"", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTrimMax(t *testing.T) {
	if got := TrimMax("  hello  ", 10); got != "hello" {
		t.Errorf("TrimMax short = %q", got)
	}
	if got := TrimMax("abcdefgh", 3); got != "abc" {
		t.Errorf("TrimMax long = %q", got)
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2025-06-01")
	if err != nil {
		t.Fatalf("date-only parse failed: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTime date-only = %v, want %v", got, want)
	}

	if _, err := ParseTime("2025-06-01T10:30:00Z"); err != nil {
		t.Errorf("RFC3339 parse failed: %v", err)
	}

	_, err = ParseTime("not-a-date")
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
}
