package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode is a domain error code used by ledger validations.
type ErrorCode string

const (
	// ErrorInsufficientFunds indicates the available (or held) balance cannot cover the amount.
	ErrorInsufficientFunds ErrorCode = "0018"
	// ErrorAccountLocked indicates the account underwent a chargeback and rejects balance changes.
	ErrorAccountLocked ErrorCode = "0024"
	// ErrorDuplicateTransaction indicates a deposit or withdrawal reuses an existing transaction id.
	ErrorDuplicateTransaction ErrorCode = "0040"
	// ErrorTransactionNotFound indicates a dispute-class record references an unknown transaction id.
	ErrorTransactionNotFound ErrorCode = "0041"
	// ErrorClientMismatch indicates a dispute-class record names a client other than the transaction's owner.
	ErrorClientMismatch ErrorCode = "0042"
	// ErrorAmountOverflow indicates arithmetic exceeded the representable amount range.
	ErrorAmountOverflow ErrorCode = "0097"
	// ErrorInvalidInput indicates record or amount validation failed.
	ErrorInvalidInput ErrorCode = "1001"
	// ErrorInvalidDisputeState indicates an invalid dispute state transition was requested.
	ErrorInvalidDisputeState ErrorCode = "1002"
)

// DomainError represents a structured ledger domain validation error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

// CodeOf extracts the domain error code from err.
//
// It returns the empty code when err is nil or does not wrap a DomainError.
// Front ends use this to decide which record-level failures to swallow:
// everything except ErrorAmountOverflow is recoverable, since a rejected
// record never mutates balances.
func CodeOf(err error) ErrorCode {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	return ""
}
