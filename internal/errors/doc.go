// Package errors provides structured, coded diagnostics for the Vuego
// runtime core.
//
// None of these are thrown: the runtime's usage diagnostics substitute a
// safe default (invalid type becomes a comment node) or no-op (duplicate
// mount) and report through the warn channel. The error type carries a
// stable code so warn handlers and tests can switch on it.
//
// # Codes
//
//   - W001-W099: usage diagnostics (invalid type, duplicate registration)
//   - W100-W199: mount lifecycle diagnostics
//   - W200-W299: hook invocation diagnostics
package errors
