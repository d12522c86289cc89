package attempt

import (
	"time"

	"github.com/google/uuid"
)

// Try holds the outcome of a computation: exactly one of a success value
// or a captured fault. Values are immutable; every combinator returns a
// new Try (or the receiver unchanged), never mutates in place.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Try[T] {
	return Try[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom reinterprets a failed Try over a new value type. The fault,
// id and creation time carry over unchanged.
func FailureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Do evaluates compute inside the fault-catching scope. A returned non-nil
// error or a panic raised during evaluation yields a Failure; otherwise the
// result is wrapped as Success. This is the single chokepoint that converts
// raised faults into Try values; Map, FlatMap, Handle and Rescue all route
// their callback evaluation through it.
func Do[T any](compute func() (T, error)) (out Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T](Recovered(r))
		}
	}()

	v, err := compute()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Eval is Do for computations that signal faults only by panicking.
func Eval[T any](compute func() T) Try[T] {
	return Do(func() (T, error) {
		return compute(), nil
	})
}

func (t Try[T]) Result() T {
	return t.value
}

func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// Get projects the Try onto Go's usual (value, error) pair.
func (t Try[T]) Get() (T, error) {
	if t.isSuccess {
		return t.value, nil
	}
	var zero T
	return zero, t.err
}

// MustGet returns the success value or re-raises the held fault. The fault
// comes back exactly as captured: an error fault is panicked as-is, a
// *PanicError re-panics its original payload.
func (t Try[T]) MustGet() T {
	if !t.isSuccess {
		if pe, ok := t.err.(*PanicError); ok {
			panic(pe.Payload)
		}
		panic(t.err)
	}
	return t.value
}

// GetOrElse returns the success value, or the fallback for a Failure.
// fallback is not evaluated on success.
func (t Try[T]) GetOrElse(fallback func() T) T {
	if t.isSuccess {
		return t.value
	}
	return fallback()
}

// Map transforms the success value in place of type. A fault raised by f
// becomes a Failure rather than escaping to the caller. Failure returns
// itself without invoking f. Type-changing transforms live at package level,
// see Map and MapTry in transform.go.
func (t Try[T]) Map(f func(T) T) Try[T] {
	if !t.isSuccess {
		return t
	}
	return Eval(func() T {
		return f(t.value)
	})
}

// Filter keeps a success whose value satisfies pred; a rejected value
// becomes a Failure holding ErrPredicateRejected. Failure is a no-op.
func (t Try[T]) Filter(pred func(T) bool) Try[T] {
	if !t.isSuccess {
		return t
	}
	if pred(t.value) {
		return t
	}
	return Failure[T](ErrPredicateRejected)
}

// Handle recovers a Failure whose fault the partial mapping is defined at,
// wrapping the mapped value via constructor semantics (a fault raised by the
// mapping becomes a new Failure). An undefined fault, or a success, returns
// the receiver unchanged.
func (t Try[T]) Handle(recover Partial[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	if !recover.DefinedAt(t.err) {
		return t
	}
	return Eval(func() T {
		return recover.Apply(t.err)
	})
}

// Rescue recovers a Failure with a mapping that produces a whole Try. On
// success the receiver is returned without testing the mapping at all:
// recovery has no effect on an already-successful value. A fault raised by
// the mapping becomes a new Failure.
func (t Try[T]) Rescue(rescue Partial[Try[T]]) Try[T] {
	if t.isSuccess {
		return t
	}
	if !rescue.DefinedAt(t.err) {
		return t
	}

	// Capture the mapping's fault directly rather than via Eval: routing a
	// Try[T] result through Do would instantiate Try[Try[T]] from inside a
	// Try[T] method, which the compiler rejects as an instantiation cycle.
	out := t
	func() {
		defer func() {
			if r := recover(); r != nil {
				out = Failure[T](Recovered(r))
			}
		}()
		out = rescue.Apply(t.err)
	}()
	return out
}

// OnSuccess invokes f with the value iff success, then returns the receiver.
func (t Try[T]) OnSuccess(f func(T)) Try[T] {
	if t.isSuccess {
		f(t.value)
	}
	return t
}

// OnFailure invokes f with the fault iff failure, then returns the receiver.
func (t Try[T]) OnFailure(f func(error)) Try[T] {
	if !t.isSuccess {
		f(t.err)
	}
	return t
}

// ForEach invokes f with the value iff success.
func (t Try[T]) ForEach(f func(T)) {
	t.OnSuccess(f)
}

// Respond invokes k with the Try itself, regardless of variant, and returns
// the receiver. Derived combinators like Ensure are built on this seam.
func (t Try[T]) Respond(k func(Try[T])) Try[T] {
	k(t)
	return t
}

// Ensure invokes f exactly once regardless of variant and returns the
// receiver.
func (t Try[T]) Ensure(f func()) Try[T] {
	return t.Respond(func(Try[T]) {
		f()
	})
}

// ToOption discards the fault: Some(value) for success, None for failure.
func (t Try[T]) ToOption() Option[T] {
	if t.isSuccess {
		return Some(t.value)
	}
	return None[T]()
}
