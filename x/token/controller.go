package token

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/coin"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/orm"
)

// Controller manages token accounts.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller using given bucket.
func NewController(bucket orm.ModelBucket) Controller {
	return Controller{bucket: bucket}
}

// Account returns the token account stored under addr.
func (c Controller) Account(db paysplit.KVStore, addr paysplit.Address) (*Account, error) {
	var a Account
	if err := c.bucket.One(db, addr, &a); err != nil {
		return nil, errors.Wrapf(err, "token account %s", addr)
	}
	return &a, nil
}

// CreateAccount creates an empty token account at addr. ErrDuplicate is
// returned if the account exists.
func (c Controller) CreateAccount(db paysplit.KVStore, addr, owner, mint paysplit.Address) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "account address")
	}
	switch err := c.bucket.Has(db, addr); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token account %s", addr)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return c.bucket.Put(db, addr, &Account{Owner: owner, Mint: mint})
}

// Issue adds amount to the balance of an existing token account.
func (c Controller) Issue(db paysplit.KVStore, addr paysplit.Address, amount uint64) error {
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if acc.Balance, err = coin.Add(acc.Balance, amount); err != nil {
		return errors.Wrap(err, "cannot issue")
	}
	return c.bucket.Put(db, addr, acc)
}

// Transfer moves amount from src to dst. Authority must be the owner of src
// and both accounts must hold the same mint. A zero amount passes the same
// checks and moves nothing.
func (c Controller) Transfer(db paysplit.KVStore, src, dst, authority paysplit.Address, amount uint64) error {
	from, err := c.Account(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !from.Owner.Equals(authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the owner of %s", authority, src)
	}
	to, err := c.Account(db, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !from.Mint.Equals(to.Mint) {
		return errors.Wrapf(ErrMintMismatch, "%s holds %s, %s holds %s", src, from.Mint, dst, to.Mint)
	}

	if from.Balance, err = coin.Sub(from.Balance, amount); err != nil {
		return errors.Wrap(err, "cannot move")
	}
	if err := c.bucket.Put(db, src, from); err != nil {
		return err
	}
	// Reload so that a transfer to the same account is a noop.
	if to, err = c.Account(db, dst); err != nil {
		return err
	}
	if to.Balance, err = coin.Add(to.Balance, amount); err != nil {
		return errors.Wrap(err, "cannot receive")
	}
	return c.bucket.Put(db, dst, to)
}
