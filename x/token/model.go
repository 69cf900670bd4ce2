package token

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/orm"
)

// BucketName is where we store token accounts.
const BucketName = "token"

// Account is a token account.
type Account struct {
	Owner   paysplit.Address `json:"owner"`
	Mint    paysplit.Address `json:"mint"`
	Balance uint64           `json:"balance"`
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	errs = errors.AppendField(errs, "Mint", a.Mint.Validate())
	return errs
}

// NewBucket returns a bucket that stores token accounts indexed by their
// address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
