// Package ledger implements a client-account transaction engine.
//
// Core flow:
//   - Record describes one requested operation (deposit, withdrawal,
//     dispute, resolve, chargeback).
//   - Engine.Apply applies a record to the owning account and journals
//     processed deposits/withdrawals so later disputes can reference them.
//   - Engine.Snapshot reports the final balance of every known account.
//
// The package enforces deterministic behavior using typed domain errors:
// a rejected record never mutates balances, so callers may inspect the
// returned error and decide per record whether to stop or continue.
//
// Processing is strictly single-threaded and synchronous. The engine owns
// its accounts and journal exclusively; input/output surfaces (see the csv
// subpackage) stay outside the core.
package ledger
