package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If none or one non-nil error is given, that error (or nil) is returned
// unchanged. Otherwise a multi error is returned. Is called on the result
// matches if any of the contained errors matches.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = fmt.Sprintf("* %s", e)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(msgs, "\n\t"))
}

// Unpack returns all contained errors.
func (m multiErr) Unpack() []error {
	return m
}

// Code returns the code of the first contained error, consistent with a
// fail-fast approach.
func (m multiErr) Code() uint32 {
	return code(m[0])
}

type unpacker interface {
	Unpack() []error
}
