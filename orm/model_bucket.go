package orm

import (
	"reflect"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db pausegov.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key value exists.
	// It returns ErrNotFound if no entity can be found.
	Has(db pausegov.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. When the key is nil, a new
	// value from the bucket id sequence is used. The key is returned.
	Put(db pausegov.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db pausegov.KVStore, key []byte) error

	// Visit calls fn for every stored entity in the key order. The model
	// passed to fn is a fresh instance. Iteration stops on the first
	// error, which is returned.
	Visit(db pausegov.ReadOnlyKVStore, fn func(key []byte, m Model) error) error

	// Register registers this bucket for queries under given name.
	Register(name string, r pausegov.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance that stores entities of the
// same type as the given model.
func NewModelBucket(name string, m Model) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, m))
	return &modelBucket{
		b:     b,
		idSeq: b.Sequence(SeqID),
		model: reflect.TypeOf(m),
	}
}

type modelBucket struct {
	b     Bucket
	idSeq Sequence
	model reflect.Type
}

func (mb *modelBucket) One(db pausegov.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	res := obj.Value()

	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}

	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) Has(db pausegov.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrNotFound, "nil key")
	}
	ok, err := db.Has(mb.b.DBKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db pausegov.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %T in %s bucket", m, mb.b.Name())
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) Delete(db pausegov.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Visit(db pausegov.ReadOnlyKVStore, fn func(key []byte, m Model) error) error {
	start, end := PrefixRange(mb.b.DBKey(nil))
	itr, err := db.Iterator(start, end)
	if err != nil {
		return err
	}
	defer itr.Release()

	prefixLen := len(mb.b.DBKey(nil))
	for {
		dbkey, value, err := itr.Next()
		if errors.ErrIteratorDone.Is(err) {
			return nil
		}
		if err != nil {
			return err
		}
		obj, err := mb.b.Parse(dbkey[prefixLen:], value)
		if err != nil {
			return err
		}
		if err := fn(obj.Key(), obj.Value()); err != nil {
			return err
		}
	}
}

func (mb *modelBucket) Register(name string, r pausegov.QueryRouter) {
	mb.b.Register(name, r)
}

var _ ModelBucket = (*modelBucket)(nil)
