package ports

import (
	"context"

	"github.com/bft-labs/countryreport/internal/domain"
)

// CountryLoader turns an input source into countries, preserving input order.
type CountryLoader interface {
	// Load reads every country from path.
	// Returns an error of kind domain.KindIO when the source cannot be read and
	// domain.KindInvalidArgument when a line is rejected by the loader's policy.
	Load(ctx context.Context, path string) ([]domain.Country, error)
}
