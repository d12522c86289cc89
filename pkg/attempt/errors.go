package attempt

import (
	"errors"
	"fmt"
)

// ErrPredicateRejected is the fault held by the Failure that Filter produces
// when its predicate rejects a success value. Match it with errors.Is.
var ErrPredicateRejected = errors.New("attempt: predicate rejected value")

// PanicError wraps a panic payload that is not itself an error, so the
// original value survives capture and can be re-raised verbatim by MustGet.
type PanicError struct {
	Payload any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("attempt: panic: %v", e.Payload)
}

// Recovered converts a recovered panic payload into the fault to store:
// error payloads are kept as-is, anything else is wrapped in *PanicError.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Payload: r}
}
