// Package later builds asynchronous validate-then-transform closures over
// pending inputs.
//
// - Validator: pair (transform, schema) once, get a closure from pending
//   input to pending Result
// - UnknownError: the sentinel every resolution failure collapses to
//
// Three informal states per invocation: awaiting-input, validating, resolved.
// No retries and no internal timeouts; timeout semantics belong to the
// caller's pending input and context.
package later
