/*
Package cash defines a simple native currency ledger.

There is no logic in the currency, except that the balance of a wallet may
not go below zero and may not overflow. Thus, this implementation is
referred to as cash. Simple and safe.

A Ledger binds the controller to a store and can be used as the native
transfer primitive of a split.
*/
package cash
