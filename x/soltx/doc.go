/*
Package soltx translates splits into Solana transactions.

A Builder records every transfer issued by the split engine as a system
program (native lamports) or token program (SPL token) transfer instruction.
The recorded instructions form a single transaction. Solana executes all
instructions of a transaction atomically, which makes the whole split
all-or-nothing once the transaction is signed and submitted.

Addresses are 32 bytes long and map directly to Solana public keys.
*/
package soltx
