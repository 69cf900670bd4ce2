package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/crypto"
	"github.com/iov-one/paysplit/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifySignatures checks all the signatures of the payload, which must have
// at least one. The sequence of every signer is incremented.
//
// returns list of signer addresses, or error if any signature is invalid
func VerifySignatures(db paysplit.KVStore, payload []byte, chainID string, sigs []*StdSignature) ([]paysplit.Address, error) {
	if len(sigs) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	signers := make([]paysplit.Address, 0, len(sigs))
	for i, sig := range sigs {
		signer, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks one signature against the payload, check chain and
// updates state in the store
func VerifySignature(db paysplit.KVStore, sig *StdSignature, payload []byte, chainID string) (paysplit.Address, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	bucket := NewBucket()
	addr := sig.Pubkey.Address()

	var user UserData
	switch err := bucket.One(db, addr, &user); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		user = UserData{Pubkey: sig.Pubkey}
	default:
		return nil, err
	}

	toSign, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Put(db, addr, &user); err != nil {
		return nil, err
	}
	return addr, nil
}

// NextSequence returns the sequence the next signature of addr must use.
func NextSequence(db paysplit.KVStore, addr paysplit.Address) (int64, error) {
	var user UserData
	switch err := NewBucket().One(db, addr, &user); {
	case err == nil:
		return user.Sequence, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

/*
BuildSignBytes combines all info on the payload before signing

We use the following format:

version | len(chainID) | chainID      | nonce             | payload
4bytes  | uint8        | ascii string | int64 (bigendian) | serialized request

This is then prehashed with sha512 before fed into
the public key signing/verification step
*/
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !paysplit.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	// encode nonce as 8 byte, big-endian
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(seq))

	output := make([]byte, 0, 4+1+len(chainID)+8+len(payload))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, []byte(chainID)...)
	output = append(output, nonce...)
	output = append(output, payload...)

	// constant length output to feed into eddsa
	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// Sign creates a signature for the given payload
func Sign(key crypto.PrivateKey, payload []byte, chainID string, seq int64) (*StdSignature, error) {
	toSign, err := BuildSignBytes(payload, chainID, seq)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    key.PublicKey(),
		Signature: key.Sign(toSign),
		Sequence:  seq,
	}, nil
}
