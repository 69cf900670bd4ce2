package sigs

import (
	"github.com/iov-one/paysplit/crypto"
	"github.com/iov-one/paysplit/errors"
)

// StdSignature is a signature of a payload together with the public key
// that created it and the signer sequence it was created for.
type StdSignature struct {
	Pubkey    crypto.PublicKey `json:"pubkey"`
	Signature []byte           `json:"signature"`
	Sequence  int64            `json:"sequence"`
}

// Validate ensures the signature is complete.
func (s *StdSignature) Validate() error {
	var errs error
	if len(s.Pubkey) == 0 {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrEmpty)
	} else if err := s.Pubkey.Address().Validate(); err != nil {
		errs = errors.AppendField(errs, "Pubkey", err)
	}
	if len(s.Signature) == 0 {
		errs = errors.AppendField(errs, "Signature", errors.ErrEmpty)
	}
	if s.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}
