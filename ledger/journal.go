package ledger

// DisputeState tracks where a journaled transaction is in the dispute
// lifecycle.
//
// Transitions:
//
//	NORMAL → DISPUTED → NORMAL        (dispute, then resolve)
//	         DISPUTED → CHARGED_BACK  (dispute, then chargeback; terminal)
//
// No transition is defined out of CHARGED_BACK.
type DisputeState string

const (
	// StateNormal marks a transaction with no open dispute.
	StateNormal DisputeState = "NORMAL"
	// StateDisputed marks a transaction with an open dispute; its amount is held.
	StateDisputed DisputeState = "DISPUTED"
	// StateChargedBack marks a reversed transaction; terminal.
	StateChargedBack DisputeState = "CHARGED_BACK"
)

// entry is one processed deposit or withdrawal kept for later dispute
// resolution. Entries are owned exclusively by the journal and never leave
// the package.
type entry struct {
	tx     TransactionID
	client ClientID
	amount Amount
	kind   Kind
	state  DisputeState
}

// journal is the append-only record of processed deposits and withdrawals,
// keyed by transaction id. Entries are never physically removed; a charged
// back transaction stays journaled in its terminal state so a re-dispute
// fails on the state machine, not on lookup.
type journal struct {
	entries map[TransactionID]*entry
}

func newJournal() *journal {
	return &journal{entries: make(map[TransactionID]*entry)}
}

// record inserts a new entry, failing with ErrorDuplicateTransaction when
// the transaction id was already journaled. Transaction ids are never
// reused, so the first writer wins and the duplicate is rejected without
// touching the original.
func (j *journal) record(e *entry) error {
	if _, exists := j.entries[e.tx]; exists {
		return NewDomainError(ErrorDuplicateTransaction, "tx", "a transaction with the same id already exists")
	}

	j.entries[e.tx] = e

	return nil
}

// lookup finds the journaled transaction, failing with
// ErrorTransactionNotFound when the id is unknown.
func (j *journal) lookup(tx TransactionID) (*entry, error) {
	e, ok := j.entries[tx]
	if !ok {
		return nil, NewDomainError(ErrorTransactionNotFound, "tx", "the referenced transaction was not found")
	}

	return e, nil
}

// markDisputed transitions NORMAL → DISPUTED.
func (j *journal) markDisputed(tx TransactionID) error {
	return j.transition(tx, StateNormal, StateDisputed)
}

// markResolved transitions DISPUTED → NORMAL.
func (j *journal) markResolved(tx TransactionID) error {
	return j.transition(tx, StateDisputed, StateNormal)
}

// markChargedBack transitions DISPUTED → CHARGED_BACK.
func (j *journal) markChargedBack(tx TransactionID) error {
	return j.transition(tx, StateDisputed, StateChargedBack)
}

func (j *journal) transition(tx TransactionID, from, to DisputeState) error {
	e, err := j.lookup(tx)
	if err != nil {
		return err
	}

	if e.state != from {
		return NewDomainError(ErrorInvalidDisputeState, "tx", "transition is not valid from the current dispute state")
	}

	e.state = to

	return nil
}
