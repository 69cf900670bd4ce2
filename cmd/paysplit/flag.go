package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/x/soltx"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. Both hex
// and base58 (Solana) encodings are accepted. This function follows Go's flag
// package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *paysplit.Address {
	var a flagAddress
	if defaultVal != "" {
		if err := a.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return (*paysplit.Address)(&a)
}

type flagAddress paysplit.Address

func (a flagAddress) String() string {
	if len(a) == 0 {
		return ""
	}
	return paysplit.Address(a).String()
}

func (a *flagAddress) Set(raw string) error {
	addr, err := soltx.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(addr)
	return nil
}

// flagDie terminates the program when a flag is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
