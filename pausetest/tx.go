package pausetest

import "github.com/iov-one/pausegov"

// Tx represents a single message transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg pausegov.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ pausegov.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (pausegov.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message routed by its path only.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by the Validate method.
	Err error
}

var _ pausegov.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
