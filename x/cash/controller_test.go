package cash

import (
	"math"
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := splittest.NewAddress()
	addr2 := splittest.NewAddress()

	controller := NewController(NewBucket())

	_, err := controller.Balance(kv, addr)
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, controller.IssueCoins(kv, addr, 500))
	require.NoError(t, controller.IssueCoins(kv, addr, 100))
	b, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), b)

	_, err = controller.Balance(kv, addr2)
	assert.True(t, errors.ErrNotFound.Is(err))

	// overflow is rejected
	err = controller.IssueCoins(kv, addr, math.MaxUint64)
	assert.True(t, errors.ErrOverflow.Is(err), "%+v", err)
	b, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), b)

	err = controller.IssueCoins(kv, []byte("short"), 1)
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	src := splittest.NewAddress()
	dest := splittest.NewAddress()
	empty := splittest.NewAddress()

	controller := NewController(NewBucket())
	require.NoError(t, controller.IssueCoins(kv, src, 1000))

	cases := map[string]struct {
		src, dest paysplit.Address
		amount    uint64
		wantErr   *errors.Error
	}{
		"move to new wallet": {
			src: src, dest: dest, amount: 300,
		},
		"source does not exist": {
			src: empty, dest: dest, amount: 1,
			wantErr: errors.ErrNotFound,
		},
		"insufficient funds": {
			src: src, dest: dest, amount: 5000,
			wantErr: errors.ErrInsufficientAmount,
		},
		"zero amount moves nothing": {
			src: src, dest: dest, amount: 0,
		},
		"zero amount from missing wallet": {
			src: empty, dest: dest, amount: 0,
			wantErr: errors.ErrNotFound,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := kv.CacheWrap()
			defer db.Discard()

			err := controller.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			got, err := controller.Balance(db, tc.dest)
			require.NoError(t, err)
			assert.Equal(t, tc.amount, got)
			got, err = controller.Balance(db, tc.src)
			require.NoError(t, err)
			assert.Equal(t, 1000-tc.amount, got)
		})
	}
}

func TestMoveCoinsToSelf(t *testing.T) {
	kv := store.MemStore()
	addr := splittest.NewAddress()
	controller := NewController(NewBucket())
	require.NoError(t, controller.IssueCoins(kv, addr, 10))
	require.NoError(t, controller.MoveCoins(kv, addr, addr, 10))
	b, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), b)
}
