package utils

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// Savepoint isolates all writes done by the wrapped handler and either
// commits them or throws them away, depending on the returned error.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ pausegov.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on Check
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on Deliver
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a savepoint
func (s Savepoint) Check(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (*pausegov.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	var res *pausegov.CheckResult
	err := isolate(store, func(db pausegov.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deliver will optionally set a savepoint
func (s Savepoint) Deliver(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (*pausegov.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	var res *pausegov.DeliverResult
	err := isolate(store, func(db pausegov.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate runs fn on a cache wrap of the store. The cache is written only if
// fn succeeds. Stores that cannot be cache wrapped are used directly.
func isolate(store pausegov.KVStore, fn func(pausegov.KVStore) error) error {
	cstore, ok := store.(pausegov.CacheableKVStore)
	if !ok {
		return fn(store)
	}

	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	return nil
}
