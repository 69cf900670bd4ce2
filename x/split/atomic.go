package split

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// Atomic runs fn on a cache wrap of db. Changes are written to db only if fn
// succeeds. Otherwise they are discarded and the store is left as it was
// before the call.
//
// Ledgers that are bound to the store passed to fn make a split
// all-or-nothing.
func Atomic(db paysplit.CacheableKVStore, fn func(paysplit.KVStore) error) error {
	cache := db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot commit split")
	}
	return nil
}
