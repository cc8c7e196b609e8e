package gconf

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// ReadStore is a subset of pausegov.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of pausegov.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by any protobuf message that can be stored as
// a package configuration. You must add your own Validate method.
type Configuration interface {
	proto.Message
	Validate() error
}

// Key returns the database key of the configuration of given package.
func Key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src Configuration) error {
	key := Key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := proto.Marshal(src)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal: key %q: %s", key, err)
	}
	return db.Set(key, raw)
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if no configuration was saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	key := Key(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal: key %q: %s", key, err)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given Configuration object
// validate it, and store under the proper key in the database
// Returns an error if anything goes wrong
func InitConfig(db Store, opts pausegov.Options, pkg string, conf Configuration) error {
	var confOptions pausegov.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(errors.ErrInput, "read conf: "+err.Error())
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}

// QueryHandler returns the raw configuration of a single package. The query
// data is ignored.
type QueryHandler struct {
	pkg string
}

var _ pausegov.QueryHandler = QueryHandler{}

// NewQueryHandler returns a query handler for the configuration of given
// package.
func NewQueryHandler(pkg string) QueryHandler {
	return QueryHandler{pkg: pkg}
}

// Query implements pausegov.QueryHandler. Only the exact key modifier is
// supported.
func (h QueryHandler) Query(db pausegov.ReadOnlyKVStore, mod string, data []byte) ([]pausegov.Model, error) {
	if mod != pausegov.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	key := Key(h.pkg)
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []pausegov.Model{pausegov.Pair(key, raw)}, nil
}
