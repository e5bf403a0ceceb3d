package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Error kinds shared by all packages. Extensions register their own kinds
// with codes above 100.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	ErrMsg          = Register(4, "invalid message")
	ErrModel        = Register(5, "invalid model")
	ErrDuplicate    = Register(6, "duplicate")
	// ErrHuman marks a code path that a correct program never reaches.
	ErrHuman = Register(7, "coding error")
	ErrEmpty = Register(8, "value is empty")
	ErrState = Register(9, "invalid state")
	ErrType  = Register(10, "invalid type")
	ErrInput = Register(11, "invalid input")
	// ErrOverflow is returned when a counter or an amount would exceed its
	// integer type.
	ErrOverflow = Register(12, "an operation cannot be completed due to value overflow")
	// ErrDatabase is returned when the record store fails.
	ErrDatabase = Register(13, "database")
	// ErrIteratorDone ends every store iteration.
	ErrIteratorDone = Register(14, "iterator done")
	// ErrMetadata is returned when a record or message header is missing
	// or carries an unsupported schema version.
	ErrMetadata = Register(15, "invalid metadata")
	// ErrPanic is the kind of a recovered panic. Its message is never
	// exposed to clients.
	ErrPanic = Register(111222, "panic")
)

// registry maps a code to its kind. Code 1 is kept for errors without a kind.
var registry = map[uint32]*Error{1: nil}

// Register declares a new error kind. It panics if the code is taken, so call
// it from package level variable declarations only.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d already registered as %q", code, prev))
	}
	kind := &Error{code: code, desc: description}
	registry[code] = kind
	return kind
}

// Error is a registered error kind. Runtime errors wrap one of the kinds so
// that callers can test for it with Is and clients receive its code.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.desc
}

// Code returns the registered code of this kind.
func (e *Error) Code() uint32 {
	return e.code
}

// New returns an error of this kind with given description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is returns true if err is of this kind, looking through wrapped and
// combined errors. A nil kind matches only a nil error.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	return walk(err, func(cur error) bool { return cur == e })
}

// Wrap annotates err with description. It returns nil if err is nil. A stack
// trace is attached on the innermost wrap only.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the stack trace of the wrapped error for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover turns a panic into an ErrPanic error assigned to err. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

// walk calls fn for err and every error it wraps or combines, until fn
// returns true. It returns true if fn did.
func walk(err error, fn func(error) bool) bool {
	for err != nil {
		if fn(err) {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, inner := range u.Unpack() {
				if walk(inner, fn) {
					return true
				}
			}
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// stackTrace returns the outermost stack trace carried by err, if any.
func stackTrace(err error) errors.StackTrace {
	type tracer interface {
		StackTrace() errors.StackTrace
	}
	var st errors.StackTrace
	walk(err, func(cur error) bool {
		t, ok := cur.(tracer)
		if ok {
			st = t.StackTrace()
		}
		return ok
	})
	return st
}

// isNilErr returns true for a nil error and for a typed nil pointer stored
// in an error interface.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
