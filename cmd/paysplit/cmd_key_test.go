package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/paysplit/crypto"
)

func TestKeygenKeyaddr(t *testing.T) {
	dir, err := ioutil.TempDir("", "paysplit-key")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "key")

	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err == nil {
		t.Fatal("existing key must not be overwritten")
	}

	var out bytes.Buffer
	if err := cmdKeyaddr(nil, &out, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	key, err := crypto.LoadPrivateKey(keyPath)
	if err != nil {
		t.Fatalf("cannot load key: %s", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want hex and base58 lines, got %q", out.String())
	}
	if want := key.PublicKey().Address().String(); lines[0] != want {
		t.Fatalf("want %s address, got %s", want, lines[0])
	}
}
