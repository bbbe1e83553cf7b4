package category

import (
	"errors"
	"fmt"
)

// Power object generation failures. Every error returned by a checked
// generator wraps one of these inside a *PowerObjectError.
var (
	ErrUnknownKind     = errors.New("unknown power object kind")
	ErrIndexOutOfRange = errors.New("power object index out of range")
	ErrUnconstructible = errors.New("power object cannot be constructed")
	ErrWitnessCount    = errors.New("wrong number of witness morphisms")
	ErrWitnessRole     = errors.New("witness morphism has wrong endpoints")
)

// PowerObjectError reports which request failed and why.
type PowerObjectError struct {
	Type PowerObjectType
	Err  error
}

func (e *PowerObjectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PowerObjectError) Unwrap() error {
	return e.Err
}

func powerObjectError(pt PowerObjectType, err error) error {
	var pe *PowerObjectError
	if errors.As(err, &pe) {
		return err
	}
	return &PowerObjectError{Type: pt, Err: err}
}
