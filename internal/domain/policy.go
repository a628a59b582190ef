package domain

import "fmt"

// BlankLinePolicy decides what the loader does with a blank input line.
type BlankLinePolicy string

const (
	// BlankLineAbort fails the whole load on the first blank line.
	BlankLineAbort BlankLinePolicy = "abort"
	// BlankLineSkip ignores blank lines and keeps loading.
	BlankLineSkip BlankLinePolicy = "skip"
)

// ParseBlankLinePolicy converts a configuration string into a policy.
func ParseBlankLinePolicy(s string) (BlankLinePolicy, error) {
	switch BlankLinePolicy(s) {
	case BlankLineAbort, BlankLineSkip:
		return BlankLinePolicy(s), nil
	}
	return "", &OpError{
		Op:   "policy.parse",
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("unknown blank line policy %q (want %q or %q)", s, BlankLineAbort, BlankLineSkip),
	}
}
