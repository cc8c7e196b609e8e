package pausetest

import (
	"testing"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/store"
)

func TestSuccessfulDecorator(t *testing.T) {
	var (
		d Decorator
		h Handler
	)

	_, _ = d.Check(nil, nil, nil, &h)
	assertHCounts(t, &h, 1, 0)

	_, _ = d.Deliver(nil, nil, nil, &h)
	assertHCounts(t, &h, 1, 1)
}

func TestDecoratorWithError(t *testing.T) {
	d := Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrNotFound,
	}

	// When using an error returning decorator, handler is never called.
	// Otherwise using nil would panic.
	var handler pausegov.Handler

	_, err := d.Check(nil, nil, nil, handler)
	if want := errors.ErrUnauthorized; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}
	_, err = d.Deliver(nil, nil, nil, handler)
	if want := errors.ErrNotFound; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}
}

func TestDecoratorCallCount(t *testing.T) {
	var d Decorator
	assertDCounts(t, &d, 0, 0)

	_, _ = d.Check(nil, nil, nil, &Handler{})
	_, _ = d.Check(nil, nil, nil, &Handler{})
	assertDCounts(t, &d, 2, 0)

	_, _ = d.Deliver(nil, nil, nil, &Handler{})
	assertDCounts(t, &d, 2, 1)

	// Failing counter must increment as well.
	d.CheckErr = errors.ErrNotFound
	d.DeliverErr = errors.ErrNotFound
	_, _ = d.Check(nil, nil, nil, &Handler{})
	_, _ = d.Deliver(nil, nil, nil, &Handler{})
	assertDCounts(t, &d, 3, 2)
}

func TestDecorate(t *testing.T) {
	var d Decorator
	h := Handler{
		WriteKey:   []byte("key"),
		WriteValue: []byte("value"),
		DeliverErr: errors.ErrState,
	}
	db := store.MemStore()

	handler := Decorate(&h, &d)
	if _, err := handler.Check(nil, db, nil); err != nil {
		t.Fatalf("check: %s", err)
	}
	if _, err := handler.Deliver(nil, db, nil); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
	assertDCounts(t, &d, 1, 1)
	assertHCounts(t, &h, 1, 1)

	// Handler writes even when returning an error.
	if v, _ := db.Get([]byte("key")); string(v) != "value" {
		t.Fatalf("unexpected value: %q", v)
	}
}

func assertDCounts(t *testing.T, d *Decorator, wantCheck, wantDeliver int) {
	t.Helper()
	if got := d.CheckCallCount(); got != wantCheck {
		t.Errorf("want %d checks, got %d", wantCheck, got)
	}
	if got := d.DeliverCallCount(); got != wantDeliver {
		t.Errorf("want %d delivers, got %d", wantDeliver, got)
	}
	if got := d.CallCount(); got != wantCheck+wantDeliver {
		t.Errorf("want %d total, got %d", wantCheck+wantDeliver, got)
	}
}

func assertHCounts(t *testing.T, h *Handler, wantCheck, wantDeliver int) {
	t.Helper()
	if got := h.CheckCallCount(); got != wantCheck {
		t.Errorf("want %d checks, got %d", wantCheck, got)
	}
	if got := h.DeliverCallCount(); got != wantDeliver {
		t.Errorf("want %d delivers, got %d", wantDeliver, got)
	}
	if got := h.CallCount(); got != wantCheck+wantDeliver {
		t.Errorf("want %d total, got %d", wantCheck+wantDeliver, got)
	}
}
