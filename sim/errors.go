package sim

import "github.com/pkg/errors"

var (
	// ErrMalformedInput is returned when a wiring description cannot be turned
	// into a network. No partial network is ever returned alongside it.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnresolvableTarget is returned by the cycle driver when the target wire
	// does not have the single-convergence-node shape it relies on, or when a
	// branch never fires within the press bound.
	ErrUnresolvableTarget = errors.New("unresolvable target")
)

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}

func unresolvable(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnresolvableTarget, format, args...)
}
