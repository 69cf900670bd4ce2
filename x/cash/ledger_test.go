package cash

import (
	"context"
	"testing"

	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTransfer(t *testing.T) {
	ctx := context.Background()
	kv := store.MemStore()
	payer := splittest.NewAddress()
	dest := splittest.NewAddress()

	ledger := NewLedger(NewController(NewBucket()), kv)
	require.NoError(t, NewController(NewBucket()).IssueCoins(kv, payer, 50))

	err := ledger.Transfer(ctx, payer, dest, dest, 10)
	assert.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)

	require.NoError(t, ledger.Transfer(ctx, payer, dest, payer, 20))

	b, err := ledger.Balance(payer)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), b)
	b, err = ledger.Balance(dest)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), b)

	b, err = ledger.Balance(splittest.NewAddress())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), b)
}
