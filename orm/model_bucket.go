package orm

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelBucket stores models of a single type under a prefixed key space.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db paysplit.KVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists, ErrNotFound
	// otherwise.
	Has(db paysplit.KVStore, key []byte) error

	// Put saves given model in the database.
	Put(db paysplit.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db paysplit.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket storing data under the given name.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte(nil), mb.prefix...), key...)
}

func (mb *modelBucket) One(db paysplit.KVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrType, "%T cannot be loaded: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db paysplit.KVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	return nil
}

func (mb *modelBucket) Put(db paysplit.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return errors.Wrapf(errors.ErrType, "cannot serialize %T: %s", m, err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db paysplit.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
