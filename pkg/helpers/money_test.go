package helpers

import (
	"errors"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{10050, "$100.50"},
		{666, "$6.66"},
		{0, "$0.00"},
		{5, "$0.05"},
		{157995, "$1,579.95"},
		{100000000, "$1,000,000.00"},
		{-1250, "-$12.50"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDollars(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"100.50", 10050},
		{"100.5", 10050},
		{"6.66", 666},
		{"$1,579.95", 157995},
		{" 12 ", 1200},
		{"0.01", 1},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := ParseDollars(tc.in)
		if err != nil {
			t.Fatalf("ParseDollars(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDollars(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDollars_Rejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidAmount},
		{"abc", ErrInvalidAmount},
		{"1.2.3", ErrInvalidAmount},
		{"100.505", ErrAmountPrecision},
		{"99999999999", ErrInvalidAmount},
		{"1e2", ErrInvalidAmount},
		{"1E20000000", ErrInvalidAmount},
		{"1e-2000000000", ErrInvalidAmount},
	}
	for _, tc := range cases {
		if _, err := ParseDollars(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("ParseDollars(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	cents, err := ParseDollars("100.50")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cents != 10050 {
		t.Fatalf("expected 10050 cents, got %d", cents)
	}
	if got := FormatCurrency(cents); got != "$100.50" {
		t.Fatalf("expected $100.50, got %q", got)
	}
	if got := CentsToDollars(cents); got != "100.50" {
		t.Fatalf("expected 100.50, got %q", got)
	}
}
