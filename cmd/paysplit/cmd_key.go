package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/paysplit/crypto"
	"github.com/iov-one/paysplit/x/soltx"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file containing the hex encoded private key seed is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("PAYSPLIT_PRIV_KEY", os.Getenv("HOME")+"/.paysplit.priv.key"),
			"Path to the private key file. You can use PAYSPLIT_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	// Do not allow to overwrite already existing private key. User must
	// manually delete it first.
	if err := crypto.SavePrivateKey(crypto.GenPrivKeyEd25519(), *keyPathFl, false); err != nil {
		return fmt.Errorf("cannot save private key: %s", err)
	}
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the hex address and the Solana (base58) public key associated with
your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("PAYSPLIT_PRIV_KEY", os.Getenv("HOME")+"/.paysplit.priv.key"),
			"Path to the private key file. You can use PAYSPLIT_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := crypto.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}
	addr := key.PublicKey().Address()
	pk, err := soltx.PublicKey(addr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "%s\n%s\n", addr, pk)
	return err
}
