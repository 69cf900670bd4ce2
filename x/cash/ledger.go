package cash

import (
	"context"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// Ledger binds a controller to a store. It moves native currency on behalf
// of the source owner: a transfer must be authorized by the source itself.
type Ledger struct {
	ctrl Controller
	db   paysplit.KVStore
}

// NewLedger returns a ledger operating on db.
func NewLedger(ctrl Controller, db paysplit.KVStore) *Ledger {
	return &Ledger{ctrl: ctrl, db: db}
}

// Transfer moves amount from source to destination.
func (l *Ledger) Transfer(ctx context.Context, source, destination, authority paysplit.Address, amount uint64) error {
	if !authority.Equals(source) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s cannot spend from %s", authority, source)
	}
	if err := l.ctrl.MoveCoins(l.db, source, destination, amount); err != nil {
		return err
	}
	paysplit.GetLogger(ctx).Debug("coins moved",
		"src", source.String(), "dest", destination.String(), "amount", amount)
	return nil
}

// Balance returns the balance of addr, zero if the wallet does not exist.
func (l *Ledger) Balance(addr paysplit.Address) (uint64, error) {
	b, err := l.ctrl.Balance(l.db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0, nil
	}
	return b, err
}
