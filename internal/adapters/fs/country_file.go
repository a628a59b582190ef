package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

var _ ports.CountryLoader = (*CountryFileLoader)(nil)

// CountryFileLoader implements ports.CountryLoader for newline-delimited text
// files holding one country name per line.
type CountryFileLoader struct {
	policy domain.BlankLinePolicy
	logger ports.Logger
}

// NewCountryFileLoader creates a loader applying policy to blank lines.
func NewCountryFileLoader(policy domain.BlankLinePolicy, logger ports.Logger) *CountryFileLoader {
	if policy == "" {
		policy = domain.BlankLineAbort
	}
	return &CountryFileLoader{policy: policy, logger: logger}
}

// Load reads path line by line and builds one country per line, in file order.
// Both "\n" and "\r\n" terminators are accepted and lines may be of any
// length.
func (l *CountryFileLoader) Load(ctx context.Context, path string) ([]domain.Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{Op: "load", Kind: domain.KindIO, Path: path, Err: err}
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	var (
		countries []domain.Country
		lineNo    int
		skipped   int
	)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.OpError{Op: "load", Kind: domain.KindIO, Path: path, Err: err}
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		c, cerr := domain.NewCountry(line)
		if cerr != nil {
			if l.policy != domain.BlankLineSkip {
				return nil, &domain.OpError{
					Op:   "load",
					Kind: domain.KindInvalidArgument,
					Path: path,
					Err:  fmt.Errorf("line %d: %w", lineNo, cerr),
				}
			}
			skipped++
		} else {
			countries = append(countries, c)
		}
		if err != nil {
			break
		}
	}

	if skipped > 0 {
		l.logger.Warn("skipped blank input lines", ports.RunFields(ctx, ports.String("path", path), ports.Int("skipped", skipped))...)
	}
	l.logger.Debug("loaded countries", ports.RunFields(ctx, ports.String("path", path), ports.Int("count", len(countries)))...)
	return countries, nil
}
