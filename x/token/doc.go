/*
Package token implements a fungible asset ledger.

Balances are kept in token accounts. Each token account has an owner, the
only address allowed to spend from it, and a mint, the asset it holds. Funds
can move only between accounts of the same mint.
*/
package token
