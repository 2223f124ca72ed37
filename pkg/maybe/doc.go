// Package maybe defines the core model shared by the validator builders:
//
// - Result[T]: error-or-value pair with constructor/accessor discipline
// - Issue/Issues: per-violation diagnostics with a JSON-array projection
// - Verdict[T]: tagged outcome of a safe validation (Pass/Reject)
// - Schema/AsyncSchema: capability contracts a validation engine must satisfy
// - SchemaFunc: plain-function adapter for both contracts
//
// Engines never raise: every rule failure travels through a Verdict, and the
// builders in solo and later turn verdicts into Result pairs. Callers branch
// on IsSuccess (or the first element of Pair) before trusting the value.
package maybe
