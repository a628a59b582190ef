// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [CountryLoader]: Reads country names from the input source
//   - [ReportSink]: Prepares and appends sections to the report artifact
//   - [ReportPublisher]: Ships a finished report somewhere else
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (file system, zerolog, S3).
package ports
