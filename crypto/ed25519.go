package crypto

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"golang.org/x/crypto/ed25519"
)

// KeyPerm is the file permissions for saved private keys
const KeyPerm = 0600

// PublicKey is an ed25519 public key. Its bytes are the account address.
type PublicKey ed25519.PublicKey

// Address returns the account address controlled by this key.
func (p PublicKey) Address() paysplit.Address {
	return paysplit.Address(p).Clone()
}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// PrivateKey is an ed25519 private key.
type PrivateKey ed25519.PrivateKey

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(p), message)
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// Seed returns the private key seed. The seed is enough to recreate the key.
func (p PrivateKey) Seed() []byte {
	return ed25519.PrivateKey(p).Seed()
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be %d bytes long", ed25519.SeedSize)
	}
	return PrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// DecodePrivateKey reads a hex encoded seed created by EncodePrivateKey
// and returns the original PrivateKey
func DecodePrivateKey(hexKey string) (PrivateKey, error) {
	seed, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "private key is not hex encoded")
	}
	return PrivKeyEd25519FromSeed(seed)
}

// EncodePrivateKey stores the private key seed as a hex string
// that can be saved and later loaded
func EncodePrivateKey(key PrivateKey) string {
	return hex.EncodeToString(key.Seed())
}

// LoadPrivateKey will load a private key from a file,
// Which was previously writen by SavePrivateKey
func LoadPrivateKey(filename string) (PrivateKey, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read key file")
	}
	return DecodePrivateKey(string(raw))
}

// SavePrivateKey will encode the privatekey in hex and write to
// the named file. It will refuse to overwrite a file
func SavePrivateKey(key PrivateKey, filename string, force bool) error {
	if !force { // check before overwriting keys
		if _, err := os.Stat(filename); err == nil {
			return errors.Wrap(errors.ErrDuplicate, fmt.Sprintf("refusing to overwrite: %s", filename))
		}
	}
	return ioutil.WriteFile(filename, []byte(EncodePrivateKey(key)), KeyPerm)
}
