package token

import (
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/splittest/assert"
	"github.com/iov-one/paysplit/store"
)

func TestTransfer(t *testing.T) {
	owner := splittest.NewAddress()
	mint := splittest.NewAddress()
	otherMint := splittest.NewAddress()

	src := splittest.NewAddress()
	dst := splittest.NewAddress()
	foreign := splittest.NewAddress()

	db := store.MemStore()
	ctrl := NewController(NewBucket())
	assert.Nil(t, ctrl.CreateAccount(db, src, owner, mint))
	assert.Nil(t, ctrl.CreateAccount(db, dst, splittest.NewAddress(), mint))
	assert.Nil(t, ctrl.CreateAccount(db, foreign, splittest.NewAddress(), otherMint))
	assert.Nil(t, ctrl.Issue(db, src, 100))

	cases := map[string]struct {
		src, dst, authority paysplit.Address
		amount              uint64
		wantErr             *errors.Error
		wantSrc, wantDst    uint64
	}{
		"success": {
			src: src, dst: dst, authority: owner, amount: 40,
			wantSrc: 60, wantDst: 40,
		},
		"not the owner": {
			src: src, dst: dst, authority: splittest.NewAddress(), amount: 40,
			wantErr: errors.ErrUnauthorized,
		},
		"different mint": {
			src: src, dst: foreign, authority: owner, amount: 40,
			wantErr: ErrMintMismatch,
		},
		"missing destination": {
			src: src, dst: splittest.NewAddress(), authority: owner, amount: 40,
			wantErr: errors.ErrNotFound,
		},
		"missing source": {
			src: splittest.NewAddress(), dst: dst, authority: owner, amount: 40,
			wantErr: errors.ErrNotFound,
		},
		"insufficient funds": {
			src: src, dst: dst, authority: owner, amount: 101,
			wantErr: errors.ErrInsufficientAmount,
		},
		"zero amount moves nothing": {
			src: src, dst: dst, authority: owner, amount: 0,
			wantSrc: 100, wantDst: 0,
		},
		"zero amount still checks the owner": {
			src: src, dst: dst, authority: splittest.NewAddress(), amount: 0,
			wantErr: errors.ErrUnauthorized,
		},
		"zero amount still checks the mint": {
			src: src, dst: foreign, authority: owner, amount: 0,
			wantErr: ErrMintMismatch,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cache := db.CacheWrap()
			defer cache.Discard()

			err := ctrl.Transfer(cache, tc.src, tc.dst, tc.authority, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			acc, err := ctrl.Account(cache, tc.src)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrc, acc.Balance)
			acc, err = ctrl.Account(cache, tc.dst)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDst, acc.Balance)
		})
	}
}

func TestCreateAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := splittest.NewAddress()
	owner := splittest.NewAddress()
	mint := splittest.NewAddress()

	assert.Nil(t, ctrl.CreateAccount(db, addr, owner, mint))
	assert.IsErr(t, errors.ErrDuplicate, ctrl.CreateAccount(db, addr, owner, mint))

	err := ctrl.CreateAccount(db, splittest.NewAddress(), nil, mint)
	assert.FieldError(t, err, "Owner", errors.ErrInput)

	acc, err := ctrl.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, mint, acc.Mint)
	assert.Equal(t, uint64(0), acc.Balance)
}
