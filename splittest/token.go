package splittest

import (
	"context"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// TokenAccount describes a token account known to TokenProgram.
type TokenAccount struct {
	Owner paysplit.Address
	Mint  paysplit.Address
}

// TokenProgram is a mock implementing split.TokenProgram interface.
// Transfers are delegated to the embedded Transferrer. Account information
// is served from Accounts.
type TokenProgram struct {
	*Transferrer

	// Accounts maps hex encoded token account addresses to their
	// description.
	Accounts map[string]TokenAccount
}

// NewTokenProgram returns a program that never fails transfers.
func NewTokenProgram() *TokenProgram {
	return &TokenProgram{
		Transferrer: NewTransferrer(),
		Accounts:    make(map[string]TokenAccount),
	}
}

// AddAccount registers a token account.
func (p *TokenProgram) AddAccount(account, owner, mint paysplit.Address) {
	p.Accounts[account.String()] = TokenAccount{Owner: owner, Mint: mint}
}

func (p *TokenProgram) AccountInfo(ctx context.Context, account paysplit.Address) (paysplit.Address, paysplit.Address, error) {
	acc, ok := p.Accounts[account.String()]
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "token account %s", account)
	}
	return acc.Owner, acc.Mint, nil
}
