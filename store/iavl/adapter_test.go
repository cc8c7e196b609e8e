package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/pausegov/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreCacheWrap(t *testing.T) {
	s := MockCommitStore()

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))

	got, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, got, "cache must not be visible before write")

	require.NoError(t, cache.Write())
	got, err = s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	id, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	latest, err := s.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id, latest)

	cache = s.CacheWrap()
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Set([]byte("c"), []byte("3")))

	it, err := cache.ReverseIterator(nil, nil)
	require.NoError(t, err)
	var keys []string
	for {
		k, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
	}
	it.Release()
	assert.Equal(t, []string{"c", "b"}, keys)
}

func TestCommitStorePersistence(t *testing.T) {
	dir, err := ioutil.TempDir("", "pausegov-iavl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s, err := NewCommitStore(dir, "state")
	require.NoError(t, err)
	require.NoError(t, s.LoadLatestVersion())

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("paused"), []byte{1}))
	require.NoError(t, cache.Write())
	want, err := s.Commit()
	require.NoError(t, err)

	// Writes that are not committed are lost on reload.
	cache = s.CacheWrap()
	require.NoError(t, cache.Set([]byte("lost"), []byte{1}))
	require.NoError(t, cache.Write())
	s.Close()

	reopened, err := NewCommitStore(dir, "state")
	require.NoError(t, err)
	require.NoError(t, reopened.LoadLatestVersion())

	got, err := reopened.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	val, err := reopened.Get([]byte("paused"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, val)

	val, err = reopened.Get([]byte("lost"))
	require.NoError(t, err)
	assert.Nil(t, val)
}
