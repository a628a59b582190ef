package domain

import (
	"errors"
	"strings"
)

// ErrBlankName is wrapped by NewCountry when the name is empty or only whitespace.
var ErrBlankName = errors.New("name must not be empty")

// Country is an immutable country name.
// A Country built with NewCountry always has a non-blank name. The zero value
// has no name and is dropped by ValidEntries.
type Country struct {
	name string
}

// NewCountry validates name and returns a Country holding it verbatim.
func NewCountry(name string) (Country, error) {
	if strings.TrimSpace(name) == "" {
		return Country{}, &OpError{Op: "country.new", Kind: KindInvalidArgument, Err: ErrBlankName}
	}
	return Country{name: name}, nil
}

// Name returns the name exactly as it was given to NewCountry.
func (c Country) Name() string {
	return c.name
}

func (c Country) String() string {
	return c.name
}

// Valid reports whether c carries a non-blank name.
func (c Country) Valid() bool {
	return strings.TrimSpace(c.name) != ""
}

// ValidEntries returns the countries with a non-blank name, in input order.
// Every analysis runs on its result rather than on raw loader output.
func ValidEntries(countries []Country) []Country {
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the names of countries in order.
func Names(countries []Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.name
	}
	return out
}
