package ledger

// Engine is the central transaction engine used for processing all records.
//
// Accounts are created on the fly when records reference new or unknown
// client ids. The engine holds exclusive, unshared ownership of all
// accounts and the journal for its entire lifetime; records are applied
// strictly one at a time in the order the caller supplies them.
//
// An Engine is not safe for concurrent use. A concurrent extension would
// need per-client serialization, since operations on different clients are
// independent but operations on the same client must stay totally ordered.
type Engine struct {
	accounts map[ClientID]*Account
	journal  *journal
}

// NewEngine creates a new, empty transaction engine.
func NewEngine() *Engine {
	return &Engine{
		accounts: make(map[ClientID]*Account),
		journal:  newJournal(),
	}
}

// AccountView is one account's state as reported by Snapshot.
type AccountView struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// Apply processes one record and applies its effects to the owning account.
//
// Behavior per kind:
//   - deposit/withdrawal: mutate the (lazily created) account, then journal
//     the transaction for later disputes.
//   - dispute: freeze the referenced transaction's amount
//     (available → held).
//   - resolve: settle an open dispute in the client's favor
//     (held → available).
//   - chargeback: uphold an open dispute; the held amount leaves the
//     account and the account is locked for good.
//
// Every failure is returned as a DomainError and leaves all state exactly
// as it was: preconditions (duplicate id, journal lookup, client match,
// dispute state) are verified before the single mutating account call, and
// the journal transition after a successful account call cannot fail. The
// journal does not restrict which kinds may be disputed; disputing a
// withdrawal holds and, on chargeback, removes the withdrawn amount again,
// which is of questionable real-world value but deliberately not forbidden
// here.
//
// ErrorAmountOverflow is detected and surfaced like any other failure, but
// is the one condition the engine does not expect callers to recover from.
func (eng *Engine) Apply(record Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	switch record.Kind {
	case KindDeposit:
		return eng.applyTransfer(record, (*Account).Deposit)
	case KindWithdrawal:
		return eng.applyTransfer(record, (*Account).Withdraw)
	case KindDispute:
		return eng.applyDisputeClass(record, StateNormal, StateDisputed, (*Account).Hold)
	case KindResolve:
		return eng.applyDisputeClass(record, StateDisputed, StateNormal, (*Account).Release)
	case KindChargeback:
		return eng.applyDisputeClass(record, StateDisputed, StateChargedBack, (*Account).Chargeback)
	}

	// Validate already rejected unknown kinds.
	return NewDomainError(ErrorInvalidInput, "type", "unknown transaction type")
}

// applyTransfer handles deposits and withdrawals: the duplicate check runs
// before the account mutation so a rejected reuse of a transaction id
// leaves the first transaction's effect untouched.
func (eng *Engine) applyTransfer(record Record, mutate func(*Account, Amount) error) error {
	if _, err := eng.journal.lookup(record.TX); err == nil {
		return NewDomainError(ErrorDuplicateTransaction, "tx", "a transaction with the same id already exists")
	}

	account := eng.accountFor(record.Client)
	if err := mutate(account, *record.Amount); err != nil {
		return err
	}

	return eng.journal.record(&entry{
		tx:     record.TX,
		client: record.Client,
		amount: *record.Amount,
		kind:   record.Kind,
		state:  StateNormal,
	})
}

// applyDisputeClass handles dispute, resolve, and chargeback. All lookups
// and state checks happen before the account mutation; the journal
// transition afterwards can no longer fail.
func (eng *Engine) applyDisputeClass(record Record, from, to DisputeState, mutate func(*Account, Amount) error) error {
	e, err := eng.journal.lookup(record.TX)
	if err != nil {
		return err
	}

	if e.client != record.Client {
		return NewDomainError(ErrorClientMismatch, "client", "record client does not match the transaction's client")
	}

	if e.state != from {
		return NewDomainError(ErrorInvalidDisputeState, "tx", "transition is not valid from the current dispute state")
	}

	account := eng.accountFor(e.client)
	if err := mutate(account, e.amount); err != nil {
		return err
	}

	return eng.journal.transition(record.TX, from, to)
}

// Snapshot returns the current state of every known account, in no
// guaranteed order. Calling Snapshot twice without an intervening Apply
// yields identical results; downstream formatting owns ordering if it
// needs one.
func (eng *Engine) Snapshot() []AccountView {
	views := make([]AccountView, 0, len(eng.accounts))
	for _, account := range eng.accounts {
		views = append(views, AccountView{
			Client:    account.ID(),
			Available: account.Available(),
			Held:      account.Held(),
			Total:     account.Total(),
			Locked:    account.Locked(),
		})
	}

	return views
}

func (eng *Engine) accountFor(client ClientID) *Account {
	account, ok := eng.accounts[client]
	if !ok {
		account = NewAccount(client)
		eng.accounts[client] = account
	}

	return account
}
