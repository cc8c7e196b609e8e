package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/pausegov/errors"
)

// ascendBtree returns all cached items in the [start, end) range in
// ascending order. Nil start or end means unbounded.
func ascendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var items []btree.Item
	collect := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// mergeWithParent combines the ascending parent content with the cached
// items. Cached values override the parent and deleted items hide it. The
// parent iterator is released.
func mergeWithParent(cached []btree.Item, parent Iterator) ([]Model, error) {
	defer parent.Release()

	var res []Model
	pkey, pval, err := parent.Next()
	for {
		parentDone := errors.ErrIteratorDone.Is(err)
		if err != nil && !parentDone {
			return nil, err
		}
		if parentDone && len(cached) == 0 {
			return res, nil
		}

		var cmp int
		switch {
		case parentDone:
			cmp = 1
		case len(cached) == 0:
			cmp = -1
		default:
			cmp = bytes.Compare(pkey, cached[0].(keyer).Key())
		}

		if cmp < 0 {
			res = append(res, Model{Key: pkey, Value: pval})
			pkey, pval, err = parent.Next()
			continue
		}

		if item, ok := cached[0].(setItem); ok {
			res = append(res, Model{Key: item.key, Value: item.value})
		}
		cached = cached[1:]
		if cmp == 0 {
			pkey, pval, err = parent.Next()
		}
	}
}
