package soltx

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// Builder collects transfer instructions. It implements the native transfer
// primitive using the system program. Use Token to get the SPL token
// program view of the same builder.
type Builder struct {
	mu       sync.Mutex
	instrs   []solana.Instruction
	accounts map[solana.PublicKey]tokenAccount
}

type tokenAccount struct {
	owner solana.PublicKey
	mint  solana.PublicKey
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		accounts: make(map[solana.PublicKey]tokenAccount),
	}
}

// Transfer appends a system program transfer of amount lamports. The
// source account must sign the transaction, so authority must be the
// source.
func (b *Builder) Transfer(ctx context.Context, src, dst, authority paysplit.Address, amount uint64) error {
	if !authority.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s cannot spend lamports of %s", authority, src)
	}
	from, to, err := keys(src, dst)
	if err != nil {
		return err
	}
	instr, err := system.NewTransferInstruction(amount, from, to).ValidateAndBuild()
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	b.append(instr)
	return nil
}

// Token returns the token program view of this builder. Instructions
// created by both views end up in the same transaction.
func (b *Builder) Token() *TokenProgram {
	return &TokenProgram{b: b}
}

// Instructions returns all instructions created so far, in order.
func (b *Builder) Instructions() []solana.Instruction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]solana.Instruction(nil), b.instrs...)
}

// Transaction returns an unsigned transaction containing all instructions.
// Payer pays the transaction fees and must sign it.
func (b *Builder) Transaction(payer paysplit.Address, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	instrs := b.Instructions()
	if len(instrs) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no instructions")
	}
	feePayer, err := PublicKey(payer)
	if err != nil {
		return nil, errors.Wrap(err, "fee payer")
	}
	tx, err := solana.NewTransaction(instrs, recentBlockhash, solana.TransactionPayer(feePayer))
	if err != nil {
		return nil, errors.Wrap(errors.ErrState, err.Error())
	}
	return tx, nil
}

func (b *Builder) append(instr solana.Instruction) {
	b.mu.Lock()
	b.instrs = append(b.instrs, instr)
	b.mu.Unlock()
}

// TokenProgram builds SPL token transfers.
type TokenProgram struct {
	b *Builder
}

// RegisterAccount declares a token account. The builder has no access to
// the chain state, so token accounts used as funding accounts must be
// declared before use.
func (p *TokenProgram) RegisterAccount(account, owner, mint paysplit.Address) error {
	acc, err := PublicKey(account)
	if err != nil {
		return errors.Wrap(err, "account")
	}
	o, err := PublicKey(owner)
	if err != nil {
		return errors.Wrap(err, "owner")
	}
	m, err := PublicKey(mint)
	if err != nil {
		return errors.Wrap(err, "mint")
	}
	p.b.mu.Lock()
	p.b.accounts[acc] = tokenAccount{owner: o, mint: m}
	p.b.mu.Unlock()
	return nil
}

// AccountInfo returns the owner and the mint of a registered token account.
func (p *TokenProgram) AccountInfo(ctx context.Context, account paysplit.Address) (paysplit.Address, paysplit.Address, error) {
	acc, err := PublicKey(account)
	if err != nil {
		return nil, nil, err
	}
	p.b.mu.Lock()
	info, ok := p.b.accounts[acc]
	p.b.mu.Unlock()
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "token account %s", acc)
	}
	return Address(info.owner), Address(info.mint), nil
}

// Transfer appends a token program transfer signed by authority, the owner
// of the source token account.
func (p *TokenProgram) Transfer(ctx context.Context, src, dst, authority paysplit.Address, amount uint64) error {
	from, to, err := keys(src, dst)
	if err != nil {
		return err
	}
	owner, err := PublicKey(authority)
	if err != nil {
		return errors.Wrap(err, "authority")
	}
	instr, err := token.NewTransferInstruction(amount, from, to, owner, nil).ValidateAndBuild()
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	p.b.append(instr)
	return nil
}

func keys(src, dst paysplit.Address) (solana.PublicKey, solana.PublicKey, error) {
	from, err := PublicKey(src)
	if err != nil {
		return from, from, errors.Wrap(err, "source")
	}
	to, err := PublicKey(dst)
	if err != nil {
		return from, to, errors.Wrap(err, "destination")
	}
	return from, to, nil
}

// Signers authenticates the addresses that are going to sign the built
// transaction. The chain verifies those signatures when the transaction is
// submitted.
type Signers []paysplit.Address

func (s Signers) HasAddress(ctx context.Context, addr paysplit.Address) bool {
	for _, a := range s {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}
