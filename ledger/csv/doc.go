// Package csv reads transaction records from, and writes account
// snapshots to, the comma-separated reference format.
//
// Input columns: type, client, tx, amount (amount required only for
// deposits and withdrawals). Output columns: client, available, held,
// total, locked, with monetary fields rendered at four decimal places.
//
// The package is thin I/O glue around the ledger core: all domain
// validation stays in ledger, and all value parsing and formatting goes
// through ledger.ParseAmount and ledger.Amount.
package csv
