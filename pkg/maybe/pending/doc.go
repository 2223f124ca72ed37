// Package pending implements the minimal future/promise pair used by the
// asynchronous validator.
//
// - New: create a Pending[T] with its write-side Resolver
// - Resolve/Reject/Settle: settle once, later calls are ignored
// - Of/Rejected: already-settled values
// - Go: run a func in a goroutine, recovering panics into rejections
// - Await/Done: wait for settlement, honoring the caller's context
//
// There is no cancellation of its own; callers cancel through the context
// they pass to Await.
package pending
