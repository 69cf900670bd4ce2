/*
Package errors implements the error taxonomy used by paysplit packages.

Reuse the root errors declared in this package whenever possible and register
custom package errors only when a caller needs to tell them apart. Extensions
register their own root errors with Register(code, description), usually in
an errors.go file of the extension package (see x/split).

Create error instances with ErrXyz.New("...") or errors.Wrap(err, "...") at the
point of failure so that a stacktrace is attached. Only the innermost wrap
records the stacktrace. Do not declare wrapped errors as package variables,
the recorded stacktrace would point to the package initialization.

Use Kind.Is(err) to test the category of an error. The test unwraps the
error using the Cause method and honors errors that declare their own Is
method, so a typed error can belong to a registered kind while still carrying
extra data (see split.TransferError).
*/
package errors
