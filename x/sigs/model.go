package sigs

import (
	"github.com/iov-one/paysplit/crypto"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// UserData is the persistent state of a signer.
type UserData struct {
	Pubkey   crypto.PublicKey `json:"pubkey"`
	Sequence int64            `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	if seq := u.Sequence; seq < 0 {
		return errors.Field("Sequence", ErrInvalidSequence, "negative")
	} else if seq > 0 && u.Pubkey == nil {
		return errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	next := u.Sequence + 1

	// Greatest nonce value a javascript client can represent.
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// NewBucket returns a bucket storing user data indexed by the signer
// address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
