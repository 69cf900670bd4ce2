package token

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

const optKey = "token"

// GenesisAccount is used to parse the json from genesis file.
type GenesisAccount struct {
	Address paysplit.Address `json:"address"`
	Owner   paysplit.Address `json:"owner"`
	Mint    paysplit.Address `json:"mint"`
	Balance uint64           `json:"balance"`
}

// Initializer fulfils the Initializer interface to load token accounts from
// the genesis file
type Initializer struct{}

var _ paysplit.Initializer = Initializer{}

// FromGenesis creates all token accounts declared in the genesis.
func (Initializer) FromGenesis(opts paysplit.Options, kv paysplit.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())
	for i, a := range accts {
		if err := ctrl.CreateAccount(kv, a.Address, a.Owner, a.Mint); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := ctrl.Issue(kv, a.Address, a.Balance); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
