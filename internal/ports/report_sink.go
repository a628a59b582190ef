package ports

import "context"

// ReportSink is an append-only text artifact built one section at a time.
// Each append is an independent operation; a failure part way through a run
// leaves whatever was already written.
type ReportSink interface {
	// Prepare makes sure rootDir and rootDir/subDir exist and that fileName
	// inside them is an empty file. The computed path is returned even when
	// preparation fails so callers can keep trying to write to it.
	Prepare(ctx context.Context, rootDir, subDir, fileName string) (string, error)

	// AppendSection appends header followed by each body line.
	AppendSection(ctx context.Context, path, header string, body []string) error

	// AppendValue appends header followed by a single value line.
	AppendValue(ctx context.Context, path, header, value string) error
}
