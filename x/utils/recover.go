package utils

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// Recovery is a decorator to recover from panics in handlers, so that a
// programming error rejects the single message instead of crashing the
// ledger host.
type Recovery struct{}

var _ pausegov.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (_ *pausegov.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (_ *pausegov.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
