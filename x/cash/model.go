package cash

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the native currency balance of a single address.
type Wallet struct {
	Balance uint64 `json:"balance"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate is a noop. Any balance is valid.
func (w *Wallet) Validate() error {
	return nil
}

// NewBucket returns a bucket that stores wallets indexed by their address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// walletKey returns the key under which the wallet of an address is stored.
func walletKey(addr paysplit.Address) []byte {
	return addr
}
