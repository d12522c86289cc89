package attempt

import "errors"

// Partial is a mapping over faults paired with an applicability test.
// Handle and Rescue invoke Apply only where DefinedAt reports true.
type Partial[Out any] struct {
	defined func(err error) bool
	apply   func(err error) Out
}

func NewPartial[Out any](defined func(err error) bool, apply func(err error) Out) Partial[Out] {
	return Partial[Out]{defined: defined, apply: apply}
}

// DefinedAt reports whether the mapping applies to err. A Partial with no
// predicate is defined nowhere.
func (p Partial[Out]) DefinedAt(err error) bool {
	return p.defined != nil && p.apply != nil && p.defined(err)
}

func (p Partial[Out]) Apply(err error) Out {
	return p.apply(err)
}

// OnIs builds a Partial defined at faults matching target per errors.Is.
func OnIs[Out any](target error, apply func(err error) Out) Partial[Out] {
	return NewPartial(func(err error) bool {
		return errors.Is(err, target)
	}, apply)
}

// OnAs builds a Partial defined at faults assignable to E per errors.As;
// apply receives the matched fault already converted.
func OnAs[E error, Out any](apply func(e E) Out) Partial[Out] {
	return NewPartial(func(err error) bool {
		var e E
		return errors.As(err, &e)
	}, func(err error) Out {
		var e E
		errors.As(err, &e)
		return apply(e)
	})
}

// OnAny builds a Partial defined at every fault.
func OnAny[Out any](apply func(err error) Out) Partial[Out] {
	return NewPartial(func(error) bool {
		return true
	}, apply)
}
