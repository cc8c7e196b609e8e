package app

import (
	"reflect"

	"github.com/iov-one/pausegov"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []pausegov.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    utils.NewRecovery(),
    utils.NewLogging(),
    utils.NewSavepoint().OnDeliver(),
    pause.NewGate(keeper),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...pausegov.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...pausegov.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := append(d.chain[:len(d.chain):len(d.chain)], chain...)
	return Decorators{newChain}
}

// cutoffNil will in-place remove all all nil values from given slice.
func cutoffNil(ds []pausegov.Decorator) []pausegov.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h pausegov.Handler) pausegov.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    pausegov.Decorator
	next pausegov.Handler
}

var _ pausegov.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
