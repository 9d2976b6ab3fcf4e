// Package log provides the strict structured logging facade used by ledger
// front ends.
//
// The Logger interface intentionally does not expose printf/line/fatal
// helpers; call sites pass a message and typed fields. The zap-backed
// implementation in this package is the production logger; NewNop is for
// tests and for library consumers that opt out of logging entirely.
package log
