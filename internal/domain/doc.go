// Package domain contains the core entities and value objects for countryreport.
//
// This package is the innermost layer of the application. It has no
// dependencies on infrastructure concerns (file system, logging, object
// storage) and contains only the rules every other layer relies on.
//
// # Entities
//
//   - [Country]: a validated, non-blank country name
//   - [Section]: one labeled block of the report artifact
//   - [BlankLinePolicy]: how the loader treats blank input lines
//
// # Errors
//
// Failures are classified with [Kind]. Use [IsKind] or errors.Is against
// [ErrInvalidArgument] and [ErrIO] to tell them apart.
package domain
