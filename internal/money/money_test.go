package money

import (
	"errors"
	"testing"
)

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{125, "1.25"},
		{25000, "250.00"},
		{100000, "1000.00"},
		{-5, "-0.05"},
		{-12345, "-123.45"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Cents(%d).String() = %q, want %q", int64(tc.in), got, tc.want)
		}
	}
}

func TestCentsDollars(t *testing.T) {
	if got := Cents(175000).Dollars(); got != "$1750.00" {
		t.Fatalf("Dollars() = %q, want $1750.00", got)
	}
}

func TestParseDollars(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"1", 100},
		{"1000", 100000},
		{"1.5", 150},
		{"1.25", 125},
		{" 2.50 ", 250},
		{"0", 0},
		{"0.005", 1},
		{"0.004", 0},
		{"12.345", 1235},
		{"12.344", 1234},
		{"1e2", 10000},
	}
	for _, tc := range cases {
		got, err := ParseDollars(tc.in)
		if err != nil {
			t.Fatalf("ParseDollars(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDollars(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDollars_Rejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidAmount},
		{"   ", ErrInvalidAmount},
		{"abc", ErrInvalidAmount},
		{"1.2.3", ErrInvalidAmount},
		{"$5", ErrInvalidAmount},
		{"-1", ErrNegativeAmount},
		{"-0.01", ErrNegativeAmount},
		{"99999999999999999999", ErrAmountTooLarge},
		{"92233720368547758.07", ErrAmountTooLarge},
		{"1000000000000.01", ErrAmountTooLarge},
		{"1e100000000", ErrInvalidAmount},
		{"1e-100000000", ErrInvalidAmount},
	}
	for _, tc := range cases {
		_, err := ParseDollars(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseDollars(%q) err = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParseDollars_MaxAmount(t *testing.T) {
	got, err := ParseDollars("1000000000000")
	if err != nil {
		t.Fatalf("ParseDollars(max) err = %v", err)
	}
	if got != MaxAmount {
		t.Errorf("ParseDollars(max) = %d, want %d", got, MaxAmount)
	}
	if got, err := ParseDollars("1.5e2"); err != nil || got != 15000 {
		t.Errorf("ParseDollars(1.5e2) = %d, %v, want 15000, nil", got, err)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(123456, "USD"); got != "$1,234.56" {
		t.Errorf("Format(123456, USD) = %q, want $1,234.56", got)
	}
	if got := Format(99, ""); got != "$0.99" {
		t.Errorf("Format(99, \"\") = %q, want $0.99", got)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	if got := NormalizeCurrency("eur"); got != "EUR" {
		t.Errorf("NormalizeCurrency(eur) = %q, want EUR", got)
	}
	if got := NormalizeCurrency("zzz"); got != DefaultCurrency {
		t.Errorf("NormalizeCurrency(zzz) = %q, want %q", got, DefaultCurrency)
	}
}

func TestKnownCurrency(t *testing.T) {
	for code, want := range map[string]bool{"usd": true, " EUR ": true, "XYZ": false, "": false} {
		if got := KnownCurrency(code); got != want {
			t.Errorf("KnownCurrency(%q) = %v, want %v", code, got, want)
		}
	}
}
