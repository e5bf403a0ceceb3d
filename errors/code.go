package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessCode is the result code of an operation that did not fail.
	SuccessCode uint32 = 0

	// Errors that do not carry a registered code are reported under an
	// internal code and a generic message.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

// Info returns the result code and the log message that should be exposed to
// the caller for the given error.
//
// When not running in a debug mode all messages of errors that do not
// provide a registered code are replaced with a generic "internal error".
func Info(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessCode, ""
	}
	c := code(err)
	switch {
	case debug:
		return c, fmt.Sprintf("%+v", err)
	case c == internalCode:
		return internalCode, internalLog
	default:
		return c, err.Error()
	}
}

type coder interface {
	Code() uint32
}

// code returns the registered code of the error kind that given error wraps.
func code(err error) uint32 {
	for {
		if isNilErr(err) {
			return SuccessCode
		}
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}

// Redact replaces all errors that were not created from a registered kind with
// a generic internal error. Panics are always redacted.
func Redact(err error) error {
	if ErrPanic.Is(err) || code(err) == internalCode {
		return errors.New(internalLog)
	}
	return err
}
