package cash

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file.
// The address is hex encoded.
type GenesisAccount struct {
	Address paysplit.Address `json:"address"`
	Balance uint64           `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ paysplit.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts paysplit.Options, kv paysplit.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := ctrl.IssueCoins(kv, acct.Address, acct.Balance); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
