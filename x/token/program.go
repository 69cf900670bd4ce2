package token

import (
	"context"

	"github.com/iov-one/paysplit"
)

// Program binds a controller to a store, so that it can be used as the
// token program of a fungible split.
type Program struct {
	ctrl Controller
	db   paysplit.KVStore
}

// NewProgram returns a program operating on db.
func NewProgram(ctrl Controller, db paysplit.KVStore) *Program {
	return &Program{ctrl: ctrl, db: db}
}

// Transfer moves amount between two token accounts.
func (p *Program) Transfer(ctx context.Context, src, dst, authority paysplit.Address, amount uint64) error {
	if err := p.ctrl.Transfer(p.db, src, dst, authority, amount); err != nil {
		return err
	}
	paysplit.GetLogger(ctx).Debug("tokens moved",
		"src", src.String(), "dest", dst.String(), "amount", amount)
	return nil
}

// AccountInfo returns the owner and the mint of a token account.
func (p *Program) AccountInfo(ctx context.Context, account paysplit.Address) (paysplit.Address, paysplit.Address, error) {
	acc, err := p.ctrl.Account(p.db, account)
	if err != nil {
		return nil, nil, err
	}
	return acc.Owner, acc.Mint, nil
}

// Balance returns the balance of a token account.
func (p *Program) Balance(account paysplit.Address) (uint64, error) {
	acc, err := p.ctrl.Account(p.db, account)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}
