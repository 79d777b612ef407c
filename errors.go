package nothofagus

import (
	"errors"
	"fmt"
)

// Sentinel errors. Violated preconditions panic with an error wrapping one of
// these, so a recovered value can be matched with errors.Is.
var (
	ErrInvalidHandle          = errors.New("invalid handle")
	ErrPaletteIndexOutOfRange = errors.New("palette index out of range")
	ErrDimensionMismatch      = errors.New("dimension mismatch")
	ErrUnregisteredState      = errors.New("unregistered state")
	ErrUnregisteredTransition = errors.New("unregistered transition")
	ErrDuplicateRegistration  = errors.New("duplicate registration")
)

// fail panics with err wrapped in a descriptive message.
func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("nothofagus: "+format+": %w", append(args, err)...))
}
