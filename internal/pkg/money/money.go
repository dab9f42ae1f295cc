// Package money normalizes monetary amounts for purchase records. Amounts are
// exact decimals, never binary floats, quantized to two fraction digits.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"compras-service/internal/pkg/errs"
)

var (
	ErrUnparsable  = errs.New("amount is not a valid decimal")
	ErrNotPositive = errs.New("amount must be greater than zero")
)

// Parse converts a decimal string into a quantized, strictly positive amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrUnparsable
	}
	return Quantize(d)
}

// Quantize rounds to 2 fraction digits half-up. Amounts must be strictly
// positive after rounding, so half-away-from-zero and half-up coincide here.
func Quantize(d decimal.Decimal) (decimal.Decimal, error) {
	q := d.Round(2)
	if !q.IsPositive() {
		return decimal.Zero, ErrNotPositive
	}
	return q, nil
}

// Number renders an amount as a JSON number with exactly two fraction digits,
// avoiding float round-trips in responses.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
