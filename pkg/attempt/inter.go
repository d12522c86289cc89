package attempt

import "time"

type ValueProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome defines an interface for types that hold either a result or a fault
type Outcome[T any] interface {
	ValueProvider[T]
	// Err returns the fault if the computation failed
	Err() error
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
	// IsFailure returns true if the computation failed
	IsFailure() bool
}

// Projectable extends Outcome with the total projections out of the
// disjunction. A deferred counterpart would implement the same shape.
type Projectable[T any] interface {
	Outcome[T]
	// GetOrElse returns the value or the lazily evaluated fallback
	GetOrElse(fallback func() T) T
	// ToOption discards the fault
	ToOption() Option[T]
	// MustGet returns the value or re-raises the held fault
	MustGet() T
}
