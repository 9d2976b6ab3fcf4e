package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits an Amount carries.
//
// Four digits match the snapshot rendering precision, so every
// representable input value survives a parse/format round trip exactly.
const AmountScale = 4

// Amount is a non-negative fixed-point monetary value stored as an integer
// count of 1/10000 currency sub-units. Integer storage keeps currency
// arithmetic exact; decimal.Decimal is used only at the parse/format
// boundary.
//
// Arithmetic is checked: Add and Sub report overflow and underflow instead
// of wrapping. Balances are expected to stay below roughly 2^50 sub-units;
// the ceiling is documented rather than enforced, and crossing the int64
// range is detected but treated as a non-recoverable condition by callers.
type Amount struct {
	units int64
}

// Zero is the zero amount.
var Zero = Amount{}

// ParseAmount parses a decimal string into an Amount.
//
// Negative values and values with more than AmountScale fractional digits
// are rejected with ErrorInvalidInput; values whose sub-unit count does not
// fit an int64 are rejected with ErrorAmountOverflow.
func ParseAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Zero, NewDomainError(ErrorInvalidInput, "amount", "amount is not a valid decimal number")
	}

	if d.IsNegative() {
		return Zero, NewDomainError(ErrorInvalidInput, "amount", "amount must not be negative")
	}

	shifted := d.Shift(AmountScale)
	if !shifted.IsInteger() {
		return Zero, NewDomainError(ErrorInvalidInput, "amount", "amount has more than 4 fractional digits")
	}

	if !shifted.BigInt().IsInt64() {
		return Zero, NewDomainError(ErrorAmountOverflow, "amount", "amount exceeds the representable range")
	}

	return Amount{units: shifted.IntPart()}, nil
}

// AmountFromUnits builds an Amount from a raw count of 1/10000 sub-units.
// Negative counts are rejected with ErrorInvalidInput.
func AmountFromUnits(units int64) (Amount, error) {
	if units < 0 {
		return Zero, NewDomainError(ErrorInvalidInput, "amount", "amount must not be negative")
	}

	return Amount{units: units}, nil
}

// Add returns a+b, or ErrorAmountOverflow when the sum exceeds the
// representable range.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.units > math.MaxInt64-b.units {
		return Zero, NewDomainError(ErrorAmountOverflow, "amount", "amount addition overflows")
	}

	return Amount{units: a.units + b.units}, nil
}

// Sub returns a-b, or ErrorInsufficientFunds when b exceeds a.
//
// Amounts are non-negative, so underflow and insufficiency are the same
// condition.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b.units > a.units {
		return Zero, NewDomainError(ErrorInsufficientFunds, "amount", "amount subtraction underflows")
	}

	return Amount{units: a.units - b.units}, nil
}

// Cmp compares a and b, returning -1, 0, or 1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// Units returns the raw count of 1/10000 sub-units.
func (a Amount) Units() int64 {
	return a.units
}

// Decimal returns the amount as a decimal.Decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.units, -AmountScale)
}

// String renders the amount with exactly AmountScale fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(AmountScale)
}
