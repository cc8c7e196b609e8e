package pause

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// Transfer is implemented by messages that move value. Such messages are
// rejected while the ledger is paused. Any other message is administrative
// and is never blocked.
type Transfer interface {
	pausegov.Msg
	// IsTransfer is a marker method.
	IsTransfer()
}

// Gate is a decorator that blocks transfers while the ledger is paused.
// The pause expires on its own once the maximum pause duration passed.
type Gate struct {
	k *Keeper
}

var _ pausegov.Decorator = Gate{}

// NewGate returns a decorator reading the pause state with given keeper.
func NewGate(k *Keeper) Gate {
	return Gate{k: k}
}

func (g Gate) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (*pausegov.CheckResult, error) {
	if err := g.allow(ctx, db, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (g Gate) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (*pausegov.DeliverResult, error) {
	if err := g.allow(ctx, db, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (g Gate) allow(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if _, ok := msg.(Transfer); !ok {
		return nil
	}
	t, ok := pausegov.BlockTime(ctx)
	if !ok {
		return errors.Wrap(errors.ErrHuman, "block time not set")
	}
	paused, err := g.k.IsPaused(db, pausegov.AsUnixTime(t))
	if err != nil {
		return errors.Wrap(err, "cannot read pause state")
	}
	if paused {
		return errors.Wrapf(ErrContractPaused, "%s rejected", msg.Path())
	}
	return nil
}
