package ticker

import (
	"errors"
	"math"
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2.1, "2.10"},
		{1, "1.00"},
		{121.7, "121.70"},
		{0, "0.00"},
		{-8.84, "-8.84"},
	}
	for _, c := range cases {
		got, err := FormatDecimal(c.in)
		if err != nil {
			t.Fatalf("FormatDecimal(%v): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("FormatDecimal(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDecimalInvalid(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FormatDecimal(v); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("FormatDecimal(%v): expected ErrInvalidNumber, got %v", v, err)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "$1.00"},
		{121.7, "$121.70"},
		{0.5, "$0.50"},
	}
	for _, c := range cases {
		got, err := FormatPrice(c.in)
		if err != nil {
			t.Fatalf("FormatPrice(%v): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatChange(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.01, "+0.01"},
		{1.51, "+1.51"},
		{-8.84, "-8.84"},
		{0, "0.00"},
	}
	for _, c := range cases {
		got, err := FormatChange(c.in)
		if err != nil {
			t.Fatalf("FormatChange(%v): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("FormatChange(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSignPositiveAlwaysPrefixed(t *testing.T) {
	for _, v := range []float64{0.001, 1, 42.5, 1e6} {
		s, err := FormatDecimal(v)
		if err != nil {
			t.Fatalf("FormatDecimal(%v): %v", v, err)
		}
		signed := FormatSign(v, s)
		if signed[0] != '+' {
			t.Errorf("FormatSign(%v, %q) = %q, expected leading '+'", v, s, signed)
		}
	}
}

func TestFormatSignNonPositiveUnchanged(t *testing.T) {
	for _, v := range []float64{0, -0.001, -42.5} {
		s, err := FormatDecimal(v)
		if err != nil {
			t.Fatalf("FormatDecimal(%v): %v", v, err)
		}
		if signed := FormatSign(v, s); signed != s {
			t.Errorf("FormatSign(%v, %q) = %q, expected unchanged", v, s, signed)
		}
	}
}
