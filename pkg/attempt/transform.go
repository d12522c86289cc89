package attempt

import "errors"

// Type-changing combinators. Go methods cannot introduce type parameters,
// so these live at package level; the same-type forms on Try cover fluent
// chaining.

// Map transforms the success value with a pure function. A fault raised by
// f is captured as a Failure; a failed input short-circuits without invoking
// f.
func Map[In, Out any](t Try[In], f func(r In) Out) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return Eval(func() Out {
		return f(t.Result())
	})
}

// MapTry transforms the success value with a function that may fail the
// usual Go way. The returned error, or a panic, becomes a Failure.
func MapTry[In, Out any](t Try[In], f func(r In) (Out, error)) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return Do(func() (Out, error) {
		return f(t.Result())
	})
}

// FlatMap feeds the success value to a function that already produces a Try.
// The evaluation runs inside the fault-catching scope, so a fault raised by
// f becomes a Failure and a failed produced Try stays one. A failed input
// short-circuits without invoking f.
func FlatMap[In, Out any](t Try[In], f func(r In) Try[Out]) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}

	out := Eval(func() Try[Out] {
		return f(t.Result())
	})
	if out.IsFailure() {
		return FailureFrom[Try[Out], Out](out)
	}
	return out.Result()
}

// AndThen is FlatMap under the name call sites often read better with.
func AndThen[In, Out any](t Try[In], f func(r In) Try[Out]) Try[Out] {
	return FlatMap(t, f)
}

// Finally collapses a Try to a plain value via per-variant handlers.
func Finally[In, Out any](t Try[In], onSuccess func(r In) Out, onFailure func(err error) Out) Out {
	if t.IsSuccess() {
		return onSuccess(t.Result())
	}
	return onFailure(t.Err())
}

// Validate turns an invalid success value into a Failure carrying the
// message. Failures pass through.
func Validate[T any](t Try[T], validate func(in T) (valid bool, errMsg string)) Try[T] {
	if t.IsSuccess() {
		if valid, errMsg := validate(t.Result()); !valid {
			return Failure[T](errors.New(errMsg))
		}
	}
	return t
}
