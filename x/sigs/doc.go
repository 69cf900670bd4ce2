/*
Package sigs provides basic authentication: it verifies ed25519 signatures
over a payload, maintains a sequence per public key for replay protection
and records the signers in the context.

Authenticate reads the signers back and can be used as the authenticator of
a split engine.
*/
package sigs
