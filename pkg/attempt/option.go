package attempt

// Option is the lossy projection of a Try: the value without the fault.
type Option[T any] struct {
	value   T
	defined bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.defined
}

// GetOrElse returns the value, or the fallback when empty. fallback is not
// evaluated for a defined Option.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if o.defined {
		return o.value
	}
	return fallback()
}

func (o Option[T]) ForEach(f func(T)) {
	if o.defined {
		f(o.value)
	}
}
