// Package chain provides a fluent wrapper around attempt.Try[T]
// for building synchronous outcome pipelines.
//
// It composes the attempt combinators behind a convenient Chain[T] type.
// This enables ergonomic pipelines without dealing directly with branching
// results at each step.
//
// Key operations:
// - Start/FromValue/Eval: begin a chain from a Try, a value or a computation
// - Then/ThenTry: compose Try-returning or (T, error)-returning functions
// - Map/Filter: transform or reject the successful value
// - Handle/Rescue: recover failures through a partial fault mapping
// - Tee/Ensure: run side effects without changing the result
// - Or/And: select the first success, or require all and join the faults
// - Finally: collapse the chain into a final value via handlers
package chain
