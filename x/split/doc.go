/*
Package split implements the disbursement engine: moving a pooled balance
owned by a single payer to many destinations in one logical operation.

A split is described by a Request. The amount each destination receives is
either given explicitly (Fixed) or computed as a share of a total
(Proportional). Every request goes through the same pipeline: the payer is
authorized, the request is validated, per destination amounts are computed
and finally one transfer per destination is issued, in order. The first
failing transfer aborts the split and is reported as a TransferError that
carries the failed position.

The engine does not compensate transfers that already happened. Use Atomic
to run a split inside a store cache wrap that is discarded when the split
fails.

Two asset modes are supported. Native moves the base currency between
addresses. Fungible moves a token from the payer's funding account to the
token account of each destination, using a TokenProgram.
*/
package split
