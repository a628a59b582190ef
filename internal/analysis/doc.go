// Package analysis implements the fixed battery of name analyses that make up
// a country report.
//
// Every function takes the valid entries (see domain.ValidEntries) and is pure:
// no I/O, no shared state. Battery returns the analyses in report order, each
// producing one domain.Section.
//
// Lengths count Unicode code points. Case mapping uses golang.org/x/text/cases
// so multi-rune mappings such as "ß" -> "SS" behave like full Unicode casing.
package analysis
