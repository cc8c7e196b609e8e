package pausetest

import "github.com/iov-one/pausegov"

// Decorator is a mock implementation of the pausegov.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ pausegov.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (*pausegov.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (*pausegov.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls the decorator with given handler as
// the next one.
func Decorate(h pausegov.Handler, d pausegov.Decorator) pausegov.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn pausegov.Handler
	dc pausegov.Decorator
}

var _ pausegov.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
