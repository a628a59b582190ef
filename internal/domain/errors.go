package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the countryreport domain.
// These errors can be checked with errors.Is.
var (
	// ErrInvalidArgument is returned when a value fails validation, such as a
	// blank country name.
	ErrInvalidArgument = errors.New("countryreport: invalid argument")

	// ErrIO is returned when reading the input or writing the report fails.
	ErrIO = errors.New("countryreport: i/o error")
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindIO              Kind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind Kind
	Path string // optional
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel error for the kind of e.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindInvalidArgument:
		return target == ErrInvalidArgument
	case KindIO:
		return target == ErrIO
	}
	return false
}

// IsKind helps callers classify errors without depending on adapter packages.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
