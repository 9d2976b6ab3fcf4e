package ledger

// ClientID is the stable unique identifier of a client account.
type ClientID uint16

// Account is the balance state of one client.
//
// The account consists of two sub balances:
//  1. Available funds: funds the client may withdraw or use.
//  2. Held funds: funds frozen pending dispute resolution. The client
//     cannot use these funds until they are either released or charged
//     back.
//
// Every mutator preserves available >= 0, held >= 0, and
// total == available + held. Violating calls fail with a DomainError and
// leave the account untouched; nothing ever clamps.
//
// Accounts are created lazily by the engine on first reference and are
// mutated only through their own methods.
type Account struct {
	id        ClientID
	available Amount
	held      Amount
	locked    bool
}

// NewAccount creates a new empty account with the given client id.
func NewAccount(id ClientID) *Account {
	return &Account{id: id}
}

// ID returns the client id that owns the account.
func (a *Account) ID() ClientID {
	return a.id
}

// Available returns the funds the client may withdraw.
func (a *Account) Available() Amount {
	return a.available
}

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() Amount {
	return a.held
}

// Total returns available + held.
//
// Deposit bounds available+held on every credit, so the sum is always
// representable.
func (a *Account) Total() Amount {
	return Amount{units: a.available.units + a.held.units}
}

// Locked reports whether the account underwent a chargeback. A locked
// account rejects all further balance-changing operations but may still be
// queried.
func (a *Account) Locked() bool {
	return a.locked
}

// Deposit credits amount to the available balance.
//
// It fails with ErrorAccountLocked on a locked account and with
// ErrorAmountOverflow when the new total would exceed the representable
// range. Overflow is detected rather than wrapped, but is the one condition
// this design does not recover from: callers should stop processing.
func (a *Account) Deposit(amount Amount) error {
	if err := a.checkLocked(); err != nil {
		return err
	}

	available, err := a.available.Add(amount)
	if err != nil {
		return err
	}

	// Keep the derived total representable as well.
	if _, err := available.Add(a.held); err != nil {
		return err
	}

	a.available = available

	return nil
}

// Withdraw debits amount from the available balance.
//
// It fails with ErrorAccountLocked on a locked account and with
// ErrorInsufficientFunds when amount exceeds the available balance.
func (a *Account) Withdraw(amount Amount) error {
	if err := a.checkLocked(); err != nil {
		return err
	}

	available, err := a.available.Sub(amount)
	if err != nil {
		return err
	}

	a.available = available

	return nil
}

// Hold moves amount from available to held when a dispute opens.
//
// It fails with ErrorInsufficientFunds when amount exceeds the available
// balance; this can happen when the disputed funds were already withdrawn.
func (a *Account) Hold(amount Amount) error {
	if err := a.checkLocked(); err != nil {
		return err
	}

	available, err := a.available.Sub(amount)
	if err != nil {
		return err
	}

	a.available = available
	// held+amount stays within available+held, which Deposit already bounded.
	a.held = Amount{units: a.held.units + amount.units}

	return nil
}

// Release moves amount from held back to available when a dispute is
// resolved in the client's favor.
//
// It fails with ErrorInsufficientFunds when amount exceeds the held
// balance.
func (a *Account) Release(amount Amount) error {
	if err := a.checkLocked(); err != nil {
		return err
	}

	held, err := a.held.Sub(amount)
	if err != nil {
		return err
	}

	a.held = held
	// available+amount stays within available+held, which Deposit already bounded.
	a.available = Amount{units: a.available.units + amount.units}

	return nil
}

// Chargeback removes amount from held entirely and locks the account.
//
// The removed funds leave the account, representing a reversal. Locking is
// the last mutation an account ever sees: every further balance-changing
// call fails with ErrorAccountLocked.
func (a *Account) Chargeback(amount Amount) error {
	if err := a.checkLocked(); err != nil {
		return err
	}

	held, err := a.held.Sub(amount)
	if err != nil {
		return err
	}

	a.held = held
	a.locked = true

	return nil
}

func (a *Account) checkLocked() error {
	if a.locked {
		return NewDomainError(ErrorAccountLocked, "client", "account is locked")
	}

	return nil
}
