// Package attempt provides Try[T], a two-variant disjunction holding either
// a success value or a captured fault, with synchronous combinators for
// transforming, filtering and recovering outcomes without branching on
// errors at every call site.
//
// Highlights:
// - Success/Failure: construct a Try directly from a value or a fault
// - Do/Eval: evaluate a computation, capturing returned errors and panics
// - Map/MapTry/FlatMap/AndThen: transform outcomes, short-circuiting failure
// - Filter: reject success values, producing ErrPredicateRejected
// - Handle/Rescue: recover failures through a Partial fault mapping
// - OnSuccess/OnFailure/Respond/Ensure: side-effect hooks returning the receiver
// - GetOrElse/ToOption/Finally: project out of the disjunction
//
// Every combinator runs its callbacks immediately in the calling goroutine;
// a Try is immutable once constructed and safe to share like any other
// immutable value.
package attempt
