package analysis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func nameLength(s string) int {
	return utf8.RuneCountInString(s)
}

// A cases.Caser keeps state between calls, so a fresh one is built per use.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// firstLetterKey returns the first rune of the upper-cased s. Full case
// mapping applies, so "ß" keys as "S".
func firstLetterKey(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(upper(s))
	return r, true
}

func containsSpace(s string) bool {
	return strings.Contains(s, " ")
}
