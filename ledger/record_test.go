package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ParseKind
// ---------------------------------------------------------------------------

func TestParseKind(t *testing.T) {
	tests := []struct {
		input     string
		expected  Kind
		errorCode ErrorCode
	}{
		{input: "deposit", expected: KindDeposit},
		{input: "withdrawal", expected: KindWithdrawal},
		{input: "dispute", expected: KindDispute},
		{input: "resolve", expected: KindResolve},
		{input: "chargeback", expected: KindChargeback},

		{input: "Deposit", errorCode: ErrorInvalidInput},
		{input: "transfer", errorCode: ErrorInvalidInput},
		{input: "", errorCode: ErrorInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			kind, err := ParseKind(tt.input)

			if tt.errorCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errorCode, CodeOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

// ---------------------------------------------------------------------------
// Record shape validation
// ---------------------------------------------------------------------------

func TestRecordValidate(t *testing.T) {
	amount := Amount{units: 10_000}

	tests := []struct {
		name      string
		record    Record
		errorCode ErrorCode
	}{
		{name: "deposit with amount", record: NewDeposit(1, 1, amount)},
		{name: "withdrawal with amount", record: NewWithdrawal(1, 2, amount)},
		{name: "dispute without amount", record: NewDispute(1, 1)},
		{name: "resolve without amount", record: NewResolve(1, 1)},
		{name: "chargeback without amount", record: NewChargeback(1, 1)},

		{name: "deposit missing amount", record: Record{Kind: KindDeposit, Client: 1, TX: 1}, errorCode: ErrorInvalidInput},
		{name: "withdrawal missing amount", record: Record{Kind: KindWithdrawal, Client: 1, TX: 1}, errorCode: ErrorInvalidInput},
		{name: "dispute carrying amount", record: Record{Kind: KindDispute, Client: 1, TX: 1, Amount: &amount}, errorCode: ErrorInvalidInput},
		{name: "resolve carrying amount", record: Record{Kind: KindResolve, Client: 1, TX: 1, Amount: &amount}, errorCode: ErrorInvalidInput},
		{name: "chargeback carrying amount", record: Record{Kind: KindChargeback, Client: 1, TX: 1, Amount: &amount}, errorCode: ErrorInvalidInput},
		{name: "unknown kind", record: Record{Kind: "transfer", Client: 1, TX: 1}, errorCode: ErrorInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.record.Validate()

			if tt.errorCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errorCode, CodeOf(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
