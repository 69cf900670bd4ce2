package cash

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/coin"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/orm"
)

// Controller is the functionality needed by other extensions to move
// native currency.
type Controller interface {
	// Balance returns the amount held by an address. ErrNotFound is
	// returned if the wallet does not exist.
	Balance(paysplit.KVStore, paysplit.Address) (uint64, error)

	// IssueCoins adds the given amount to the destination wallet,
	// creating it if needed.
	IssueCoins(paysplit.KVStore, paysplit.Address, uint64) error

	// MoveCoins moves amount from src to dest. It fails if src does not
	// exist or does not hold enough funds. Moving a zero amount only
	// checks the wallets.
	MoveCoins(store paysplit.KVStore, src, dest paysplit.Address, amount uint64) error
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using given bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(store paysplit.KVStore, addr paysplit.Address) (uint64, error) {
	var w Wallet
	if err := c.bucket.One(store, walletKey(addr), &w); err != nil {
		return 0, errors.Wrapf(err, "wallet %s", addr)
	}
	return w.Balance, nil
}

func (c BaseController) IssueCoins(store paysplit.KVStore, dest paysplit.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.getOrCreate(store, dest)
	if err != nil {
		return err
	}
	if w.Balance, err = coin.Add(w.Balance, amount); err != nil {
		return errors.Wrap(err, "cannot issue")
	}
	return c.bucket.Put(store, walletKey(dest), w)
}

func (c BaseController) MoveCoins(store paysplit.KVStore, src, dest paysplit.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	var sender Wallet
	if err := c.bucket.One(store, walletKey(src), &sender); err != nil {
		return errors.Wrapf(err, "source %s", src)
	}
	balance, err := coin.Sub(sender.Balance, amount)
	if err != nil {
		return errors.Wrap(err, "cannot move")
	}
	sender.Balance = balance
	if err := c.bucket.Put(store, walletKey(src), &sender); err != nil {
		return err
	}

	// Reload the recipient after saving the sender, so that moving
	// coins to the same wallet is a noop.
	recipient, err := c.getOrCreate(store, dest)
	if err != nil {
		return err
	}
	if recipient.Balance, err = coin.Add(recipient.Balance, amount); err != nil {
		return errors.Wrap(err, "cannot receive")
	}
	return c.bucket.Put(store, walletKey(dest), recipient)
}

func (c BaseController) getOrCreate(store paysplit.KVStore, addr paysplit.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(store, walletKey(addr), &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
