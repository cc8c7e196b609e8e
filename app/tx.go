package app

import "github.com/iov-one/pausegov"

// Tx wraps a single message submitted to the ledger.
type Tx struct {
	Msg pausegov.Msg
}

var _ pausegov.Tx = (*Tx)(nil)

// GetMsg returns the wrapped message.
func (tx *Tx) GetMsg() (pausegov.Msg, error) {
	return tx.Msg, nil
}
