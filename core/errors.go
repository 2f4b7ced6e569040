package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for an absent name, type or level
	// passed to a public entry point.
	ErrInvalidArgument = errors.New("logfacade: invalid argument")

	// ErrNoBackend is returned when no candidate backend passes its probe.
	ErrNoBackend = errors.New("logfacade: no backend available")
)

// InvariantError is the panic value for states that correct code can
// never reach. It is never returned as an error.
type InvariantError struct {
	Op     string
	Detail string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("logfacade: invariant violated in %s: %s", e.Op, e.Detail)
}

// UnknownLevel panics with an InvariantError for a level outside the
// closed set. Backend translation tables call it from their default case.
func UnknownLevel(op string, l Level) {
	panic(InvariantError{Op: op, Detail: fmt.Sprintf("level %d outside the closed set", int8(l))})
}
