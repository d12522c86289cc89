package chain

import (
	"errors"

	"github.com/ib-77/attempt/pkg/attempt"
)

// Chain wraps an attempt.Try to enable fluent synchronous composition.
type Chain[T any] struct {
	res attempt.Try[T]
}

func Start[T any](r attempt.Try[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(attempt.Success(v))
}

// Eval begins a chain from a computation, capturing faults the way
// attempt.Do does.
func Eval[T any](compute func() (T, error)) Chain[T] {
	return Start(attempt.Do(compute))
}

// Result returns the underlying attempt.Try
func (c Chain[T]) Result() attempt.Try[T] {
	return c.res
}

// Then composes functions that already return attempt.Try[T]
func (c Chain[T]) Then(onSuccess func(t T) attempt.Try[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: attempt.FlatMap(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: attempt.MapTry(c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: c.res.Map(onSuccess)}
}

// Filter rejects successful values that fail the predicate
func (c Chain[T]) Filter(pred func(t T) bool) Chain[T] {
	return Chain[T]{res: c.res.Filter(pred)}
}

// Handle recovers a failure through a partial fault mapping
func (c Chain[T]) Handle(recover attempt.Partial[T]) Chain[T] {
	return Chain[T]{res: c.res.Handle(recover)}
}

// Rescue recovers a failure with a mapping producing a whole Try
func (c Chain[T]) Rescue(recover attempt.Partial[attempt.Try[T]]) Chain[T] {
	return Chain[T]{res: c.res.Rescue(recover)}
}

// Tee triggers side effects for success/failure without changing the result
func (c Chain[T]) Tee(onSuccess func(t T), onFailure func(err error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Result())
	}
	return c
}

// Ensure runs f regardless of variant without changing the result
func (c Chain[T]) Ensure(f func()) Chain[T] {
	return Chain[T]{res: c.res.Ensure(f)}
}

// Or keeps the receiver when successful, otherwise the first successful
// alternative; with no success, the first failure wins.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And requires every chain to succeed, keeping the last result; faults of
// all failed chains are accumulated into one joined error.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	var errs []error
	if c.res.IsFailure() {
		errs = append(errs, attempt.GetErrors(c.res.Err())...)
	}

	last := c
	for _, req := range required {
		if req.res.IsFailure() {
			errs = append(errs, attempt.GetErrors(req.res.Err())...)
		}
		last = req
	}

	if len(errs) > 0 {
		return Chain[T]{res: attempt.Failure[T](errors.Join(errs...))}
	}
	return last
}

// Then chains a function that returns attempt.Try[U]
func Then[T, U any](c Chain[T], onSuccess func(t T) attempt.Try[U]) Chain[U] {
	return Chain[U]{res: attempt.FlatMap(c.Result(), onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(t T) (U, error)) Chain[U] {
	return Chain[U]{res: attempt.MapTry(c.Result(), try)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(t T) U) Chain[U] {
	return Chain[U]{res: attempt.Map(c.Result(), onSuccess)}
}

// Finally collapses the chain into a final value via per-variant handlers
func Finally[T, U any](c Chain[T], onSuccess func(t T) U, onFailure func(err error) U) U {
	return attempt.Finally(c.Result(), onSuccess, onFailure)
}
