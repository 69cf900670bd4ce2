package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is an error bound to a single attribute of a validated value.
type FieldError struct {
	// Path is the dotted name of the attribute, for example
	// Destinations.2.Address.
	Path string
	Desc string
	Err  error
}

// Field returns a FieldError for the attribute at path, or nil if err is
// nil. A stack trace is attached unless err already carries one.
func Field(path string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &FieldError{Path: path, Desc: description, Err: err}
}

// AppendField adds a field error for path to errs. A nil err leaves errs
// unchanged.
func AppendField(errs error, path string, err error) error {
	return Append(errs, Field(path, err, ""))
}

// Path joins attribute names and element indexes into a field path.
//
//   Path("Destinations", 2, "Address") == "Destinations.2.Address"
func Path(elems ...interface{}) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ".")
}

func (e *FieldError) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("field %q: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("field %q: %s: %s", e.Path, e.Desc, e.Err)
}

func (e *FieldError) Cause() error  { return e.Err }
func (e *FieldError) Unwrap() error { return e.Err }

// Field returns the path of the attribute.
func (e *FieldError) Field() string { return e.Path }

// FieldErrors returns all errors created for the given path. Grouped errors
// are searched, as well as the causes of every error. The search does not
// descend into a matching field error.
func FieldErrors(err error, path string) []error {
	var res []error
	visit(err, func(e error) bool {
		if f, ok := e.(*FieldError); ok && f.Path == path {
			res = append(res, e)
			return false
		}
		return true
	})
	return res
}

// visit calls fn for err and every error it is made of, depth first. When
// fn returns false the children of that error are skipped.
func visit(err error, fn func(error) bool) {
	for !isNilErr(err) {
		if !fn(err) {
			return
		}
		switch e := err.(type) {
		case unpacker:
			for _, child := range e.Unpack() {
				visit(child, fn)
			}
			return
		case causer:
			err = e.Cause()
		default:
			return
		}
	}
}
