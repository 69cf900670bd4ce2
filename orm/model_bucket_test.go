package orm

import (
	"testing"

	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Count int64 `json:"count"`
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	var c counter
	err := b.One(db, []byte("c1"), &c)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	require.NoError(t, b.Put(db, []byte("c1"), &counter{Count: 7}))
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, int64(7), c.Count)
	require.NoError(t, b.Has(db, []byte("c1")))

	// Keys are namespaced by the bucket name.
	other := NewModelBucket("other")
	assert.True(t, errors.ErrNotFound.Is(other.Has(db, []byte("c1"))))

	err = b.Put(db, []byte("c2"), &counter{Count: -1})
	assert.True(t, errors.ErrModel.Is(err), "%+v", err)

	err = b.Put(db, nil, &counter{Count: 1})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)

	require.NoError(t, b.Delete(db, []byte("c1")))
	assert.True(t, errors.ErrNotFound.Is(b.Delete(db, []byte("c1"))))
}

func TestIllegalBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("Bad Name!") })
}
