package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAmount(t *testing.T, value string) Amount {
	t.Helper()

	amount, err := ParseAmount(value)
	require.NoError(t, err)

	return amount
}

// ---------------------------------------------------------------------------
// ParseAmount
// ---------------------------------------------------------------------------

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		units     int64
		errorCode ErrorCode
	}{
		{name: "integer", input: "100", units: 1_000_000},
		{name: "full precision", input: "1.2345", units: 12_345},
		{name: "partial precision", input: "0.5", units: 5_000},
		{name: "zero", input: "0", units: 0},
		{name: "zero with fraction", input: "0.0000", units: 0},
		{name: "sub-unit only", input: "0.0001", units: 1},
		{name: "large magnitude", input: "112589990684262.4", units: 1_125_899_906_842_624_000},

		{name: "negative", input: "-1", errorCode: ErrorInvalidInput},
		{name: "too precise", input: "0.00001", errorCode: ErrorInvalidInput},
		{name: "not a number", input: "ten", errorCode: ErrorInvalidInput},
		{name: "empty", input: "", errorCode: ErrorInvalidInput},
		{name: "beyond int64 sub-units", input: "9999999999999999.9999", errorCode: ErrorAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := ParseAmount(tt.input)

			if tt.errorCode != "" {
				require.Error(t, err)

				var domainErr DomainError
				require.True(t, errors.As(err, &domainErr))
				assert.Equal(t, tt.errorCode, domainErr.Code)
				assert.Equal(t, "amount", domainErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.units, amount.Units())
		})
	}
}

func TestAmountFromUnits(t *testing.T) {
	t.Parallel()

	amount, err := AmountFromUnits(12_345)
	require.NoError(t, err)
	assert.Equal(t, "1.2345", amount.String())

	_, err = AmountFromUnits(-1)
	require.Error(t, err)
	assert.Equal(t, ErrorInvalidInput, CodeOf(err))
}

// ---------------------------------------------------------------------------
// Checked arithmetic
// ---------------------------------------------------------------------------

func TestAmountAdd(t *testing.T) {
	t.Parallel()

	sum, err := mustAmount(t, "1.5").Add(mustAmount(t, "2.25"))
	require.NoError(t, err)
	assert.Equal(t, "3.7500", sum.String())
}

func TestAmountAddOverflowDetected(t *testing.T) {
	t.Parallel()

	top, err := AmountFromUnits(math.MaxInt64)
	require.NoError(t, err)

	_, err = top.Add(mustAmount(t, "0.0001"))
	require.Error(t, err)
	assert.Equal(t, ErrorAmountOverflow, CodeOf(err))
}

func TestAmountSub(t *testing.T) {
	t.Parallel()

	diff, err := mustAmount(t, "3").Sub(mustAmount(t, "1.0001"))
	require.NoError(t, err)
	assert.Equal(t, "1.9999", diff.String())
}

func TestAmountSubUnderflowDetected(t *testing.T) {
	t.Parallel()

	_, err := mustAmount(t, "1").Sub(mustAmount(t, "1.0001"))
	require.Error(t, err)
	assert.Equal(t, ErrorInsufficientFunds, CodeOf(err))
}

// ---------------------------------------------------------------------------
// Rendering and comparison
// ---------------------------------------------------------------------------

func TestAmountString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "0", expected: "0.0000"},
		{input: "1", expected: "1.0000"},
		{input: "1.5", expected: "1.5000"},
		{input: "0.0001", expected: "0.0001"},
		{input: "12345.6789", expected: "12345.6789"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, mustAmount(t, tt.input).String())
		})
	}
}

func TestAmountCmp(t *testing.T) {
	t.Parallel()

	one := mustAmount(t, "1")
	two := mustAmount(t, "2")

	assert.Equal(t, -1, one.Cmp(two))
	assert.Equal(t, 1, two.Cmp(one))
	assert.Equal(t, 0, one.Cmp(mustAmount(t, "1.0000")))

	assert.True(t, Zero.IsZero())
	assert.False(t, one.IsZero())
}
