package ticker

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/tapeworks/tickertape/internal/fn"
)

var (
	// ErrInvalidNumber reports a price or change that is not a finite number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMissingSymbol reports a quote without a symbol.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrMalformedUpdate reports an update that carries no changed field.
	ErrMalformedUpdate = errors.New("malformed update")
)

// FormatDecimal renders v with exactly two digits after the decimal
// point, e.g. 2.1 -> "2.10".
func FormatDecimal(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrInvalidNumber
	}
	return decimal.NewFromFloat(v).StringFixed(2), nil
}

// FormatCurrency prefixes a fixed-point string with "$".
func FormatCurrency(s string) string {
	return "$" + s
}

// FormatSign prefixes s with "+" when the original value v is strictly
// positive. Negative values keep their own "-"; zero stays unsigned.
func FormatSign(v float64, s string) string {
	if v > 0 {
		return "+" + s
	}
	return s
}

// FormatPrice renders v as a currency string, e.g. 121.7 -> "$121.70".
// The currency prefix is applied to the already fixed-point string.
func FormatPrice(v float64) (string, error) {
	return fn.Pipe2(FormatDecimal, fn.Lift(FormatCurrency))(v)
}

// FormatChange renders v with an explicit leading sign for positive
// values, e.g. 0.01 -> "+0.01", -8.84 -> "-8.84".
func FormatChange(v float64) (string, error) {
	sign := func(s string) string { return FormatSign(v, s) }
	return fn.Pipe2(FormatDecimal, fn.Lift(sign))(v)
}
