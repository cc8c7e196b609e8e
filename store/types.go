package store

import "github.com/iov-one/pausegov"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = pausegov.ReadOnlyKVStore
	SetDeleter       = pausegov.SetDeleter
	KVStore          = pausegov.KVStore
	Batch            = pausegov.Batch
	Iterator         = pausegov.Iterator
	CacheableKVStore = pausegov.CacheableKVStore
	KVCacheWrap      = pausegov.KVCacheWrap
	CommitKVStore    = pausegov.CommitKVStore
	CommitID         = pausegov.CommitID
	Model            = pausegov.Model
)
