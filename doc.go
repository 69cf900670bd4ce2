/*
Package paysplit defines the types shared by all packages of this module:
account addresses, the key value store interfaces, genesis options and the
context helpers used to carry a logger.

The disbursement engine lives in x/split. Ledgers that it can move funds
with are implemented by x/cash (native currency) and x/token (fungible asset
sub-accounts). x/soltx translates a disbursement into a Solana transaction.
*/
package paysplit
