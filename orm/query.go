package orm

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// ConsumeIterator will read all remaining data into an
// array and release the iterator
func ConsumeIterator(itr pausegov.Iterator) ([]pausegov.Model, error) {
	defer itr.Release()

	var res []pausegov.Model
	for {
		key, value, err := itr.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, pausegov.Model{Key: key, Value: value})
	}
}

// PrefixRange turns a prefix into a (start, end) range. The end is the
// smallest key that is greater than all keys with this prefix, nil if such
// key does not exist.
func PrefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}

func queryPrefix(db pausegov.ReadOnlyKVStore, prefix []byte) ([]pausegov.Model, error) {
	start, end := PrefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}
