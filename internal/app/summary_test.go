package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bft-labs/countryreport/internal/ports"
)

// nopLogger implements ports.Logger for testing.
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...ports.Field) {}
func (nopLogger) Info(msg string, fields ...ports.Field)  {}
func (nopLogger) Warn(msg string, fields ...ports.Field)  {}
func (nopLogger) Error(msg string, fields ...ports.Field) {}

func TestRenderSummary(t *testing.T) {
	res := Result{
		RunID:      "run-1",
		ReportPath: "src/matches/data.txt",
		Valid:      3,
		PublishErr: errors.New("bucket missing"),
		Sections: []SectionResult{
			{Name: "long_names", Lines: 1, Status: SectionWritten},
			{Name: "longest_name", Status: SectionSkipped},
			{Name: "short_names", Status: SectionFailed, Err: errors.New("disk full")},
		},
	}

	var buf bytes.Buffer
	RenderSummary(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "src/matches/data.txt")
	assert.Contains(t, out, "long_names")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "failed: disk full")
	assert.Contains(t, out, "run run-1")
	assert.Contains(t, out, "publish: bucket missing")
	assert.NotContains(t, out, "input:")
}

func TestRenderSummary_KeepsRunIDCase(t *testing.T) {
	res := Result{RunID: "0b6f3c2e-9d41-4c6a-a1f0-5e2d7c8b9a10", ReportPath: "data.txt", Valid: 2}

	var buf bytes.Buffer
	RenderSummary(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "run 0b6f3c2e-9d41-4c6a-a1f0-5e2d7c8b9a10")
	assert.Contains(t, out, "countries")
	assert.NotContains(t, out, "0B6F3C2E")
}
