package ledger

// TransactionID is the globally unique identifier of a deposit or
// withdrawal. Dispute-class records reference an existing TransactionID
// instead of introducing their own.
type TransactionID uint32

// Kind is the closed set of operations the engine understands.
type Kind string

const (
	// KindDeposit is a credit to the client's account.
	KindDeposit Kind = "deposit"
	// KindWithdrawal is a debit to the client's account.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute is a client's claim that a transaction was erroneous; it freezes the referenced amount.
	KindDispute Kind = "dispute"
	// KindResolve settles a dispute in the client's favor, unfreezing the referenced amount.
	KindResolve Kind = "resolve"
	// KindChargeback upholds a dispute, reversing the referenced amount and locking the account.
	KindChargeback Kind = "chargeback"
)

// ParseKind parses the wire representation of a transaction kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return Kind(value), nil
	}

	return "", NewDomainError(ErrorInvalidInput, "type", "unknown transaction type")
}

// Record is the immutable description of one requested operation.
//
// Amount is present exactly for deposits and withdrawals; dispute-class
// records reference the amount of the journaled transaction instead. Build
// records through the constructors; Engine.Apply re-validates the shape, so
// a hand-assembled Record cannot smuggle an invalid combination past the
// engine.
type Record struct {
	Kind   Kind
	Client ClientID
	TX     TransactionID
	Amount *Amount
}

// NewDeposit builds a deposit record crediting amount to client.
func NewDeposit(client ClientID, tx TransactionID, amount Amount) Record {
	return Record{Kind: KindDeposit, Client: client, TX: tx, Amount: &amount}
}

// NewWithdrawal builds a withdrawal record debiting amount from client.
func NewWithdrawal(client ClientID, tx TransactionID, amount Amount) Record {
	return Record{Kind: KindWithdrawal, Client: client, TX: tx, Amount: &amount}
}

// NewDispute builds a dispute record referencing the transaction tx.
func NewDispute(client ClientID, tx TransactionID) Record {
	return Record{Kind: KindDispute, Client: client, TX: tx}
}

// NewResolve builds a resolve record referencing the transaction tx.
func NewResolve(client ClientID, tx TransactionID) Record {
	return Record{Kind: KindResolve, Client: client, TX: tx}
}

// NewChargeback builds a chargeback record referencing the transaction tx.
func NewChargeback(client ClientID, tx TransactionID) Record {
	return Record{Kind: KindChargeback, Client: client, TX: tx}
}

// Validate checks the record shape: a known kind, and an amount present
// exactly when the kind is deposit or withdrawal.
func (r Record) Validate() error {
	switch r.Kind {
	case KindDeposit, KindWithdrawal:
		if r.Amount == nil {
			return NewDomainError(ErrorInvalidInput, "amount", "amount is required for deposits and withdrawals")
		}
	case KindDispute, KindResolve, KindChargeback:
		if r.Amount != nil {
			return NewDomainError(ErrorInvalidInput, "amount", "amount must be absent for dispute-class records")
		}
	default:
		return NewDomainError(ErrorInvalidInput, "type", "unknown transaction type")
	}

	return nil
}
