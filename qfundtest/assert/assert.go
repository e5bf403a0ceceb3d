/*
Package assert holds the few assertion helpers shared by the tests of all
packages. Every helper stops the test at the first failure.
*/
package assert

import (
	"reflect"

	"github.com/iov-one/qfund/errors"
)

// Tester is the part of testing.TB used by the helpers.
type Tester interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Nil fails unless value is nil, including typed nil pointers, maps and
// slices stored in an interface.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	t.Fatalf("want nil, got %+v", value)
}

// Equal fails unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// IsErr fails unless got matches want. A nil *errors.Error matches only a
// nil error.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q error, got %+v", want, got)
}

// FieldError fails unless err carries exactly one error for given field and
// that error matches want. With a nil want, the field must carry no error.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, field)
	if want == nil {
		if len(found) != 0 {
			t.Fatalf("want no %q error, got %d: %v", field, len(found), found)
		}
		return
	}
	if len(found) != 1 {
		t.Fatalf("want one %q error, got %d: %v", field, len(found), found)
		return
	}
	if !want.Is(found[0]) {
		t.Fatalf("want %q error for %q, got %q", want, field, found[0])
	}
}
