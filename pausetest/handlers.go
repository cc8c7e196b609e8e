package pausetest

import "github.com/iov-one/pausegov"

// Handler is a mock implementation of the pausegov.Handler interface.
//
// Each call is counted. When WriteKey is set, Check and Deliver store
// WriteKey/WriteValue before returning, even when an error is returned.
// When Panic is set, both methods panic with its value after the write.
type Handler struct {
	checkCall   int
	CheckResult pausegov.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult pausegov.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte

	Panic interface{}
}

var _ pausegov.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	res.Tags = append(res.Tags[:0:0], h.DeliverResult.Tags...)
	return &res, nil
}

func (h *Handler) write(db pausegov.KVStore) error {
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	return nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
