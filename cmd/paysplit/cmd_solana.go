package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/paysplit/x/soltx"
	"github.com/iov-one/paysplit/x/split"
)

func cmdSolanaTx(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Build an unsigned Solana transaction that executes a split.

Destinations are read from the standard input, one "address,value" pair per
line. Addresses can be base58 or hex encoded. Native splits transfer lamports
using the system program. When -mint is given, destinations are token accounts
and SPL tokens are transferred from the -funding token account, owned by the
payer.

The transaction is printed base64 encoded. It must be signed by the payer
before it is submitted. All transfers of a transaction succeed or fail
together.
`)
		fl.PrintDefaults()
	}
	var (
		payerFl     = flAddress(fl, "payer", "", "Address of the payer. Required.")
		feePayerFl  = flAddress(fl, "fee-payer", "", "Address paying the transaction fees. Defaults to the payer.")
		mintFl      = flAddress(fl, "mint", "", "Mint of the distributed token. Lamports are distributed if not set.")
		fundingFl   = flAddress(fl, "funding", "", "Token account of the payer that funds the split. Required together with -mint.")
		modeFl      = fl.String("mode", string(fixedMode), "How values are interpreted: fixed, weights or percent.")
		totalFl     = fl.Uint64("total", 0, "Total amount to distribute. Required for weights and percent modes.")
		blockhashFl = fl.String("blockhash", "", "Recent blockhash, base58 encoded. Must be set before signing if not provided here.")
	)
	fl.Parse(args)

	if len(*payerFl) == 0 {
		flagDie("-payer is required")
	}
	var blockhash solana.Hash
	if *blockhashFl != "" {
		h, err := solana.HashFromBase58(*blockhashFl)
		if err != nil {
			flagDie("invalid -blockhash: %s", err)
		}
		blockhash = h
	}
	feePayer := *feePayerFl
	if len(feePayer) == 0 {
		feePayer = *payerFl
	}

	rows, err := readRows(input)
	if err != nil {
		return err
	}

	payload := splitPayload{
		Mode:    splitMode(*modeFl),
		Payer:   *payerFl,
		Values:  rowValues(rows),
		Total:   *totalFl,
		Mint:    *mintFl,
		Funding: *fundingFl,
	}
	switch payload.Mode {
	case fixedMode, weightsMode, percentMode:
	default:
		flagDie("unknown -mode %q", *modeFl)
	}
	for _, r := range rows {
		payload.Destinations = append(payload.Destinations, r.Destination)
	}

	b := soltx.NewBuilder()
	program := b.Token()
	// The builder cannot query the chain. The funding account is declared
	// as owned by the payer and holding the mint, the token program
	// verifies it on execution.
	if len(payload.Funding) != 0 && len(payload.Mint) != 0 {
		if err := program.RegisterAccount(payload.Funding, payload.Payer, payload.Mint); err != nil {
			return err
		}
	}
	req := payload.request(program)

	signers := soltx.Signers{payload.Payer}
	engine := split.NewEngine(signers, b, split.DefaultConfiguration())
	if _, err := engine.Execute(context.Background(), req); err != nil {
		return fmt.Errorf("cannot build split: %s", err)
	}

	tx, err := b.Transaction(feePayer, blockhash)
	if err != nil {
		return err
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot serialize transaction: %s", err)
	}
	_, err = fmt.Fprintln(output, base64.StdEncoding.EncodeToString(raw))
	return err
}
