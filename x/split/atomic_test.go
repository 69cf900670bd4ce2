package split

import (
	"context"
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/splittest/assert"
	"github.com/iov-one/paysplit/store"
	"github.com/iov-one/paysplit/x/cash"
	"github.com/iov-one/paysplit/x/token"
)

var (
	_ Transferrer  = (*cash.Ledger)(nil)
	_ TokenProgram = (*token.Program)(nil)
)

func TestAtomicNativeSplit(t *testing.T) {
	payer := splittest.NewAddress()
	dests := Destinations(splittest.NewAddress(), splittest.NewAddress(), splittest.NewAddress())

	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())
	assert.Nil(t, ctrl.IssueCoins(db, payer, 50))

	split := func(amounts []uint64) error {
		return Atomic(db, func(kv paysplit.KVStore) error {
			engine := NewEngine(&splittest.Auth{Signer: payer}, cash.NewLedger(ctrl, kv), DefaultConfiguration())
			_, err := engine.FixedSplit(context.Background(), payer, Native{}, dests, amounts)
			return err
		})
	}

	// The third transfer cannot be funded. The two that succeeded must be
	// rolled back.
	err := split([]uint64{20, 20, 20})
	assert.IsErr(t, ErrTransferFailed, err)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	if index, _ := FailedIndex(err); index != 2 {
		t.Fatalf("want failure at 2, got %d", index)
	}
	assertBalance(t, ctrl, db, payer, 50)
	for _, d := range dests {
		assertBalance(t, ctrl, db, d.Address, 0)
	}

	assert.Nil(t, split([]uint64{10, 20, 15}))
	assertBalance(t, ctrl, db, payer, 5)
	assertBalance(t, ctrl, db, dests[0].Address, 10)
	assertBalance(t, ctrl, db, dests[1].Address, 20)
	assertBalance(t, ctrl, db, dests[2].Address, 15)
}

func TestAtomicFungibleSplit(t *testing.T) {
	payer := splittest.NewAddress()
	mint := splittest.NewAddress()
	funding := splittest.NewAddress()
	dests := []Destination{
		{TokenAccount: splittest.NewAddress()},
		{TokenAccount: splittest.NewAddress()},
		{TokenAccount: splittest.NewAddress()},
	}

	db := store.MemStore()
	ctrl := token.NewController(token.NewBucket())
	assert.Nil(t, ctrl.CreateAccount(db, funding, payer, mint))
	assert.Nil(t, ctrl.Issue(db, funding, 1000))
	assert.Nil(t, ctrl.CreateAccount(db, dests[0].TokenAccount, splittest.NewAddress(), mint))
	assert.Nil(t, ctrl.CreateAccount(db, dests[1].TokenAccount, splittest.NewAddress(), mint))
	// Holds a different asset, so the last transfer fails.
	assert.Nil(t, ctrl.CreateAccount(db, dests[2].TokenAccount, splittest.NewAddress(), splittest.NewAddress()))

	split := func(dests []Destination, weights []uint64) (*Receipt, error) {
		var receipt *Receipt
		err := Atomic(db, func(kv paysplit.KVStore) error {
			program := token.NewProgram(ctrl, kv)
			engine := NewEngine(&splittest.Auth{Signer: payer}, nil, DefaultConfiguration())
			asset := &Fungible{FundingAccount: funding, Mint: mint, Program: program}
			var err error
			receipt, err = engine.ProportionalSplit(context.Background(), payer, asset, dests, weights, 900)
			return err
		})
		return receipt, err
	}

	_, err := split(dests, []uint64{1, 1, 1})
	assert.IsErr(t, token.ErrMintMismatch, err)
	if index, _ := FailedIndex(err); index != 2 {
		t.Fatalf("want failure at 2, got %d", index)
	}
	assertTokens(t, ctrl, db, funding, 1000)
	assertTokens(t, ctrl, db, dests[0].TokenAccount, 0)

	receipt, err := split(dests[:2], []uint64{2, 1})
	assert.Nil(t, err)
	assert.Equal(t, uint64(900), receipt.Distributed)
	assertTokens(t, ctrl, db, funding, 100)
	assertTokens(t, ctrl, db, dests[0].TokenAccount, 600)
	assertTokens(t, ctrl, db, dests[1].TokenAccount, 300)
}

func TestAtomicMintMismatchIsRejectedBeforeTransfers(t *testing.T) {
	payer := splittest.NewAddress()
	funding := splittest.NewAddress()
	dest := splittest.NewAddress()

	db := store.MemStore()
	ctrl := token.NewController(token.NewBucket())
	assert.Nil(t, ctrl.CreateAccount(db, funding, payer, splittest.NewAddress()))
	assert.Nil(t, ctrl.Issue(db, funding, 10))

	program := token.NewProgram(ctrl, db)
	engine := NewEngine(&splittest.Auth{Signer: payer}, nil, DefaultConfiguration())
	asset := &Fungible{FundingAccount: funding, Mint: splittest.NewAddress(), Program: program}
	_, err := engine.FixedSplit(context.Background(), payer, asset, []Destination{{TokenAccount: dest}}, []uint64{5})
	assert.IsErr(t, ErrAssetMismatch, err)
	assertTokens(t, ctrl, db, funding, 10)
}

func assertBalance(t testing.TB, ctrl cash.Controller, db paysplit.KVStore, addr paysplit.Address, want uint64) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	if errors.ErrNotFound.Is(err) {
		got, err = 0, nil
	}
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}

func assertTokens(t testing.TB, ctrl token.Controller, db paysplit.KVStore, addr paysplit.Address, want uint64) {
	t.Helper()
	acc, err := ctrl.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, want, acc.Balance)
}
