package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors are given or all given errors are nil, nil is returned. A
// single non nil error is returned as it is.
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiError); ok {
			flat = append(flat, m.errors...)
			continue
		}
		flat = append(flat, e)
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiError{errors: flat}
	}
}

// multiError is an error that groups together a set of independent errors.
// Is test passes if any of the grouped errors is of the tested kind.
type multiError struct {
	errors []error
}

var (
	_ unpacker = (*multiError)(nil)
	_ kinder   = (*multiError)(nil)
)

func (m *multiError) Error() string {
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}
	points := make([]string, len(m.errors))
	for i, err := range m.errors {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m.errors), strings.Join(points, "\n\t"))
}

// Is returns true if any of the grouped errors is of the given kind.
func (m *multiError) Is(target error) bool {
	kind, ok := target.(*Error)
	if !ok {
		return false
	}
	for _, e := range m.errors {
		if kind.Is(e) {
			return true
		}
	}
	return false
}

// Code returns the code of the first grouped error.
func (m *multiError) Code() uint32 {
	return Code(m.errors[0])
}

// Unpack returns all grouped errors.
func (m *multiError) Unpack() []error {
	return m.errors
}

type unpacker interface {
	Unpack() []error
}
