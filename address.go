package paysplit

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/paysplit/errors"
)

// AddressLength is the length of all addresses. It matches the size of an
// ed25519 public key, so that a key based account uses its public key as the
// address.
const AddressLength = 32

// it must have (?s) flags, otherwise it errors when last section contains 0x20 (newline)
var derivedSeed = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Address identifies an account. It is either an ed25519 public key or a
// digest of a derivation seed (see DeriveAddress).
type Address []byte

// DeriveAddress returns an address of an account that is not controlled by
// a key, for example a token sub-account. The address is a digest of the
// "ext/type/data" seed.
func DeriveAddress(ext, typ string, data []byte) Address {
	seed := append([]byte(fmt.Sprintf("%s/%s/", ext, typ)), data...)
	if !derivedSeed.Match(seed) {
		panic(fmt.Sprintf("invalid address seed %q", seed))
	}
	h := sha256.Sum256(seed)
	return h[:]
}

// ParseAddress returns an address encoded in a hex format.
func ParseAddress(hexAddr string) (Address, error) {
	raw, err := hex.DecodeString(hexAddr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy of this address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// IsEmpty returns true if this address is not set.
func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(a))
	return json.Marshal(s)
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}

	// No value zero the address.
	if len(enc) == 0 {
		*a = nil
		return nil
	}

	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Set implements flag.Value interface.
func (a *Address) Set(hexAddr string) error {
	addr, err := ParseAddress(hexAddr)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// String returns a human readable string.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.ErrInput.Newf("address length %d", len(a))
	}
	return nil
}
