package soltx

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// PublicKey returns the Solana public key of an address.
func PublicKey(addr paysplit.Address) (solana.PublicKey, error) {
	var pk solana.PublicKey
	if err := addr.Validate(); err != nil {
		return pk, err
	}
	copy(pk[:], addr)
	return pk, nil
}

// Address returns the address of a Solana public key.
func Address(pk solana.PublicKey) paysplit.Address {
	return paysplit.Address(pk.Bytes())
}

// ParseAddress accepts either a base58 encoded Solana public key or a hex
// encoded address.
func ParseAddress(s string) (paysplit.Address, error) {
	if addr, err := paysplit.ParseAddress(s); err == nil {
		return addr, nil
	}
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "%q is neither hex nor base58", s)
	}
	return Address(pk), nil
}
