package utils

import (
	"github.com/iov-one/pausegov"
	"github.com/tendermint/tendermint/libs/common"
)

// PathTagger inspects the message being executed and adds a tag
// `path = msg.Path()` to every successful delivery. Handlers describe the
// state transition itself with their own tags, this one lets clients
// search by the message that caused it.
type PathTagger struct{}

var _ pausegov.Decorator = PathTagger{}

// PathKey is used by PathTagger as the Key in the Tag it appends
const PathKey = "path"

// NewPathTagger creates a PathTagger decorator
func NewPathTagger() PathTagger {
	return PathTagger{}
}

// Check just passes the request along
func (PathTagger) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (*pausegov.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (PathTagger) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (*pausegov.DeliverResult, error) {
	// if we error in reporting, let's do so early before dispatching
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	tag := common.KVPair{
		Key:   []byte(PathKey),
		Value: []byte(msg.Path()),
	}
	res.Tags = append(res.Tags, tag)
	return res, nil
}
