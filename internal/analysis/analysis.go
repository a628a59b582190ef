package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bft-labs/countryreport/internal/domain"
)

const (
	longNameMin  = 10
	shortNameMax = 5
	minAllLength = 3
)

func filterNames(entries []domain.Country, keep func(string) bool) []string {
	out := []string{}
	for _, c := range entries {
		if keep(c.Name()) {
			out = append(out, c.Name())
		}
	}
	return out
}

// LongNames returns names longer than 10 characters.
func LongNames(entries []domain.Country) []string {
	return filterNames(entries, func(n string) bool { return nameLength(n) > longNameMin })
}

// ShortNames returns names shorter than 5 characters.
func ShortNames(entries []domain.Country) []string {
	return filterNames(entries, func(n string) bool { return nameLength(n) < shortNameMax })
}

// StartsWithA returns names whose first character is an uppercase ASCII 'A'.
func StartsWithA(entries []domain.Country) []string {
	return filterNames(entries, func(n string) bool { return strings.HasPrefix(n, "A") })
}

// EndsWithLand returns names ending in "land". Case sensitive.
func EndsWithLand(entries []domain.Country) []string {
	return filterNames(entries, func(n string) bool { return strings.HasSuffix(n, "land") })
}

// ContainsUnited returns names containing "united" in any case.
func ContainsUnited(entries []domain.Country) []string {
	return filterNames(entries, func(n string) bool { return strings.Contains(lower(n), "united") })
}

// SortedAscending returns all names in byte-wise (code point) order.
func SortedAscending(entries []domain.Country) []string {
	names := domain.Names(entries)
	slices.Sort(names)
	return names
}

// SortedDescending returns the exact reverse of SortedAscending.
func SortedDescending(entries []domain.Country) []string {
	names := SortedAscending(entries)
	slices.Reverse(names)
	return names
}

// UniqueFirstLetters groups names by their upper-cased first character and
// returns the sole member of every single-member group. Groups are reported in
// the order their letter is first seen.
func UniqueFirstLetters(entries []domain.Country) []string {
	var order []rune
	groups := make(map[rune][]string)
	for _, c := range entries {
		key, ok := firstLetterKey(c.Name())
		if !ok {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c.Name())
	}

	out := []string{}
	for _, key := range order {
		if members := groups[key]; len(members) == 1 {
			out = append(out, members[0])
		}
	}
	return out
}

// TotalCount returns the number of entries.
func TotalCount(entries []domain.Country) int {
	return len(entries)
}

// LongestName returns the first entry with the greatest length.
// ok is false when entries is empty.
func LongestName(entries []domain.Country) (c domain.Country, ok bool) {
	for i, e := range entries {
		if i == 0 || nameLength(e.Name()) > nameLength(c.Name()) {
			c = e
		}
	}
	return c, len(entries) > 0
}

// ShortestName returns the first entry with the smallest length.
// ok is false when entries is empty.
func ShortestName(entries []domain.Country) (c domain.Country, ok bool) {
	for i, e := range entries {
		if i == 0 || nameLength(e.Name()) < nameLength(c.Name()) {
			c = e
		}
	}
	return c, len(entries) > 0
}

// UpperCaseAll returns every name upper-cased, in input order.
func UpperCaseAll(entries []domain.Country) []string {
	out := make([]string, len(entries))
	for i, c := range entries {
		out[i] = upper(c.Name())
	}
	return out
}

// MultiWord returns names containing at least one space.
func MultiWord(entries []domain.Country) []string {
	return filterNames(entries, containsSpace)
}

// CharacterCount is one line of the character count section.
type CharacterCount struct {
	Name   string
	Length int
}

// CharacterCounts returns the length of every distinct name, in the order each
// name is first seen. Repeated names collapse into one entry.
func CharacterCounts(entries []domain.Country) []CharacterCount {
	seen := make(map[string]bool, len(entries))
	out := []CharacterCount{}
	for _, c := range entries {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		out = append(out, CharacterCount{Name: c.Name(), Length: nameLength(c.Name())})
	}
	return out
}

func (cc CharacterCount) String() string {
	return fmt.Sprintf("%s: %d characters", cc.Name, cc.Length)
}

// AnyStartsWithZ reports whether any lower-cased name starts with "z".
func AnyStartsWithZ(entries []domain.Country) bool {
	return slices.ContainsFunc(entries, func(c domain.Country) bool {
		return strings.HasPrefix(lower(c.Name()), "z")
	})
}

// AllLongerThan3 reports whether every name is longer than 3 characters.
// It is true for an empty list.
func AllLongerThan3(entries []domain.Country) bool {
	for _, c := range entries {
		if nameLength(c.Name()) <= minAllLength {
			return false
		}
	}
	return true
}
