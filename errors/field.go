package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attributes err to a model or message field. It returns nil if err is
// nil, so validation can collect results unconditionally:
//
//	errs = errors.AppendField(errs, "Name", validateName(p.Name))
//
// Nested fields use dot notation (Escrow.Creator) and list elements their
// index (PayeeAddresses.2).
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{name: name, desc: description, parent: err}
}

// AppendField appends fieldErr, attributed to the named field, to errs.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

type fieldError struct {
	name   string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.name)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.name
}

// FieldErrors returns the errors attributed to the named field.
func FieldErrors(err error, name string) []error {
	if isNilErr(err) {
		return nil
	}
	if f, ok := err.(*fieldError); ok && f.name == name {
		return []error{err}
	}
	if u, ok := err.(unpacker); ok {
		var res []error
		for _, inner := range u.Unpack() {
			res = append(res, FieldErrors(inner, name)...)
		}
		return res
	}
	if c, ok := err.(causer); ok {
		return FieldErrors(c.Cause(), name)
	}
	return nil
}
