package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/qfund/errors"
)

// recorder implements Tester and only counts failures.
type recorder struct {
	failures int
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(string, ...interface{}) { r.failures++ }

func TestHelpers(t *testing.T) {
	var nilAddr []byte
	var nilErr *errors.Error
	invalid := errors.AppendField(nil, "Name", errors.ErrEmpty)
	invalid = errors.AppendField(invalid, "Owner", errors.ErrInput)
	invalid = errors.AppendField(invalid, "Owner", errors.ErrEmpty)

	cases := map[string]struct {
		Run      func(Tester)
		WantFail bool
	}{
		"nil":                {Run: func(t Tester) { Nil(t, nil) }},
		"typed nil slice":    {Run: func(t Tester) { Nil(t, nilAddr) }},
		"typed nil error":    {Run: func(t Tester) { Nil(t, nilErr) }},
		"not nil":            {Run: func(t Tester) { Nil(t, 0) }, WantFail: true},
		"equal":              {Run: func(t Tester) { Equal(t, []byte("a"), []byte("a")) }},
		"not equal":          {Run: func(t Tester) { Equal(t, uint32(1), uint64(1)) }, WantFail: true},
		"same error":         {Run: func(t Tester) { IsErr(t, errors.ErrEmpty, errors.ErrEmpty) }},
		"wrapped error":      {Run: func(t Tester) { IsErr(t, errors.ErrEmpty, errors.Wrap(errors.ErrEmpty, "name")) }},
		"both nil":           {Run: func(t Tester) { IsErr(t, nil, nil) }},
		"nil kind, no error": {Run: func(t Tester) { IsErr(t, nilErr, nil) }},
		"nil kind, an error": {Run: func(t Tester) { IsErr(t, nilErr, errors.ErrEmpty) }, WantFail: true},
		"other error": {
			Run:      func(t Tester) { IsErr(t, errors.ErrEmpty, fmt.Errorf("empty")) },
			WantFail: true,
		},
		"single field error": {Run: func(t Tester) { FieldError(t, invalid, "Name", errors.ErrEmpty) }},
		"field error of another kind": {
			Run:      func(t Tester) { FieldError(t, invalid, "Name", errors.ErrInput) },
			WantFail: true,
		},
		"many field errors": {
			Run:      func(t Tester) { FieldError(t, invalid, "Owner", errors.ErrInput) },
			WantFail: true,
		},
		"no field error expected": {Run: func(t Tester) { FieldError(t, invalid, "Pool", nil) }},
		"unexpected field error": {
			Run:      func(t Tester) { FieldError(t, invalid, "Name", nil) },
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var r recorder
			tc.Run(&r)
			if failed := r.failures > 0; failed != tc.WantFail {
				t.Fatalf("want failure %v, got %d failures", tc.WantFail, r.failures)
			}
		})
	}
}
