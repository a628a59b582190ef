package ports

import "context"

// ReportPublisher copies a finished report to another location, such as an
// object storage bucket.
type ReportPublisher interface {
	Publish(ctx context.Context, path string) error
}
