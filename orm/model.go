package orm

import (
	"github.com/iov-one/qfund"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	qfund.Persistent
	Validate() error
}
