package matching

import "github.com/iov-one/qfund/errors"

var (
	// ErrAlreadyInitialized is returned when a record with the derived
	// address already exists.
	ErrAlreadyInitialized = errors.Register(1500, "already initialized")

	// ErrAlreadyBound is returned when a project is bound to a different
	// pool.
	ErrAlreadyBound = errors.Register(1501, "project already bound")

	// ErrProjectNotFound is returned when a payee cannot be resolved to
	// a project during distribution.
	ErrProjectNotFound = errors.Register(1502, "project not found")

	// ErrDivisionByZero is returned when a project has votes but the pool
	// has none.
	ErrDivisionByZero = errors.Register(1503, "division by zero")
)
