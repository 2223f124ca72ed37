// Package solo builds synchronous validate-then-transform closures over
// Result[T] pairs.
//
// Highlights:
// - Validator: pair (transform, schema) once, get a per-input closure
// - Map: transform successful values, failures pass through
// - Finally: reduce to a concrete value via success/failure handlers
//
// Validation failures are recovered locally into diagnostics; transform
// panics are the caller's responsibility.
package solo
