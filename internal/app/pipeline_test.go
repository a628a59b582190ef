package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/countryreport/internal/adapters/fs"
	logAdapter "github.com/bft-labs/countryreport/internal/adapters/log"
	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

// stubLoader returns fixed countries or a fixed error.
type stubLoader struct {
	countries []domain.Country
	err       error
}

func (s stubLoader) Load(ctx context.Context, path string) ([]domain.Country, error) {
	return s.countries, s.err
}

// recordingSink keeps appended sections in memory and can fail chosen headers.
type recordingSink struct {
	prepareErr error
	failOn     map[string]bool
	headers    []string
	lines      map[string][]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{failOn: map[string]bool{}, lines: map[string][]string{}}
}

func (r *recordingSink) Prepare(ctx context.Context, rootDir, subDir, fileName string) (string, error) {
	return filepath.Join(rootDir, subDir, fileName), r.prepareErr
}

func (r *recordingSink) AppendSection(ctx context.Context, path, header string, body []string) error {
	if r.failOn[header] {
		return &domain.OpError{Op: "report.append", Kind: domain.KindIO, Err: errors.New("disk full")}
	}
	r.headers = append(r.headers, header)
	r.lines[header] = body
	return nil
}

func (r *recordingSink) AppendValue(ctx context.Context, path, header, value string) error {
	return r.AppendSection(ctx, path, header, []string{value})
}

type recordingPublisher struct {
	paths []string
	err   error
}

func (r *recordingPublisher) Publish(ctx context.Context, path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func mustCountries(t *testing.T, names ...string) []domain.Country {
	t.Helper()
	out := make([]domain.Country, 0, len(names))
	for _, n := range names {
		c, err := domain.NewCountry(n)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func testConfig(root string) PipelineConfig {
	return PipelineConfig{
		InputPath: filepath.Join(root, "resources", "countries.txt"),
		RootDir:   root,
		SubDir:    "matches",
		FileName:  "data.txt",
	}
}

func TestPipeline_RunWritesEverySection(t *testing.T) {
	sink := newRecordingSink()
	loader := stubLoader{countries: mustCountries(t, "Canada", "A", "Afghanistan")}
	p := NewPipeline(testConfig("/tmp/r"), loader, sink, nil, logAdapter.NewNoopLogger())

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, filepath.Join("/tmp/r", "matches", "data.txt"), res.ReportPath)
	assert.Equal(t, 3, res.Valid)
	require.Len(t, res.Sections, 16)
	assert.Zero(t, res.Failed())
	assert.Len(t, sink.headers, 16)

	assert.Equal(t, []string{"Afghanistan"}, sink.lines["Country names longer than 10 characters:"])
	assert.Equal(t, []string{"false"}, sink.lines["Any country name starts with 'z':"])
	assert.Contains(t, sink.headers, "Total country names: 3")
}

func TestPipeline_FailedSectionDoesNotStopRun(t *testing.T) {
	sink := newRecordingSink()
	sink.failOn["Short Country Names"] = true
	loader := stubLoader{countries: mustCountries(t, "Chad", "Zambia")}
	p := NewPipeline(testConfig("/tmp/r"), loader, sink, nil, logAdapter.NewNoopLogger())

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Failed())
	assert.Equal(t, SectionFailed, res.Sections[1].Status)
	assert.ErrorIs(t, res.Sections[1].Err, domain.ErrIO)
	assert.Len(t, sink.headers, 15)
	assert.Equal(t, []string{"true"}, sink.lines["Any country name starts with 'z':"])
}

func TestPipeline_UnreadableInputRunsOnEmptyList(t *testing.T) {
	sink := newRecordingSink()
	loadErr := &domain.OpError{Op: "load", Kind: domain.KindIO, Err: os.ErrNotExist}
	p := NewPipeline(testConfig("/tmp/r"), stubLoader{err: loadErr}, sink, nil, logAdapter.NewNoopLogger())

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, res.LoadErr, domain.ErrIO)
	assert.Zero(t, res.Valid)
	assert.Contains(t, sink.headers, "Total country names: 0")
	for _, h := range sink.headers {
		assert.False(t, strings.HasPrefix(h, "Longest"), "longest name must be suppressed")
		assert.False(t, strings.HasPrefix(h, "Shortest"), "shortest name must be suppressed")
	}
	assert.Equal(t, SectionSkipped, res.Sections[9].Status)
	assert.Equal(t, SectionSkipped, res.Sections[10].Status)
	assert.Len(t, sink.headers, 14)
}

func TestPipeline_RejectedInputAbortsRun(t *testing.T) {
	sink := newRecordingSink()
	loadErr := &domain.OpError{Op: "load", Kind: domain.KindInvalidArgument, Err: domain.ErrBlankName}
	pub := &recordingPublisher{}
	p := NewPipeline(testConfig("/tmp/r"), stubLoader{err: loadErr}, sink, pub, logAdapter.NewNoopLogger())

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, sink.headers)
	assert.Empty(t, pub.paths)
}

func TestPipeline_PrepareFailureStillAttemptsWrites(t *testing.T) {
	sink := newRecordingSink()
	sink.prepareErr = &domain.OpError{Op: "report.prepare", Kind: domain.KindIO, Err: os.ErrPermission}
	p := NewPipeline(testConfig("/tmp/r"), stubLoader{}, sink, nil, logAdapter.NewNoopLogger())

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, res.PrepareErr, os.ErrPermission)
	assert.NotEmpty(t, sink.headers)
}

func TestPipeline_Publish(t *testing.T) {
	t.Run("publishes report path", func(t *testing.T) {
		pub := &recordingPublisher{}
		p := NewPipeline(testConfig("/tmp/r"), stubLoader{}, newRecordingSink(), pub, logAdapter.NewNoopLogger())

		res, err := p.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{res.ReportPath}, pub.paths)
		assert.NoError(t, res.PublishErr)
	})

	t.Run("publish failure is recorded", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("bucket missing")}
		p := NewPipeline(testConfig("/tmp/r"), stubLoader{}, newRecordingSink(), pub, logAdapter.NewNoopLogger())

		res, err := p.Run(context.Background())
		require.NoError(t, err)
		assert.EqualError(t, res.PublishErr, "bucket missing")
	})
}

func newFilePipeline(t *testing.T, root string, policy domain.BlankLinePolicy) *Pipeline {
	t.Helper()
	var logger ports.Logger = logAdapter.NewNoopLogger()
	return NewPipeline(testConfig(root), fs.NewCountryFileLoader(policy, logger), fs.NewReportFile(logger), nil, logger)
}

func writeCountries(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "resources")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "countries.txt"), []byte(content), 0o644))
}

func readReport(t *testing.T, res Result) string {
	t.Helper()
	data, err := os.ReadFile(res.ReportPath)
	require.NoError(t, err)
	return string(data)
}

func TestPipeline_FileReport(t *testing.T) {
	root := t.TempDir()
	writeCountries(t, root, "Zambia\nAruba\nChad\n")
	p := newFilePipeline(t, root, domain.BlankLineAbort)

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	nl := fs.LineSeparator
	want := strings.Join([]string{
		"Country names longer than 10 characters:",
		"",
		"Short Country Names",
		"Chad",
		"",
		"Country names starting with 'A'",
		"Aruba",
		"",
		"Country name ends with 'land'",
		"",
		"Countries Containing United",
		"",
		"Sorted Country Name (ASC)",
		"Aruba",
		"Chad",
		"Zambia",
		"",
		"Sorted Country Name (DSC)",
		"Zambia",
		"Chad",
		"Aruba",
		"",
		"Unique First Letters",
		"Zambia",
		"Aruba",
		"Chad",
		"",
		"Total country names: 3",
		"",
		"Longest country name: Zambia",
		"",
		"Shortest Country Name: Chad",
		"",
		"Country Name in UPPERCASE",
		"ZAMBIA",
		"ARUBA",
		"CHAD",
		"",
		"Countries With Multiple Words",
		"",
		"Countries and Character Counts",
		"Zambia: 6 characters",
		"Aruba: 5 characters",
		"Chad: 4 characters",
		"",
		"Any country name starts with 'z':",
		"true",
		"",
		"Are all country names longer than 3 characters:",
		"true",
	}, nl) + nl

	assert.Equal(t, want, readReport(t, res))
}

func TestPipeline_RunTwiceMatchesRunOnce(t *testing.T) {
	root := t.TempDir()
	writeCountries(t, root, "Canada\nA\nAfghanistan\n")
	p := newFilePipeline(t, root, domain.BlankLineAbort)

	first, err := p.Run(context.Background())
	require.NoError(t, err)
	once := readReport(t, first)

	second, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, once, readReport(t, second))
	assert.Contains(t, once, "Country names longer than 10 characters:"+fs.LineSeparator+"Afghanistan"+fs.LineSeparator)
}

func TestPipeline_BlankLinePolicies(t *testing.T) {
	t.Run("abort leaves no report", func(t *testing.T) {
		root := t.TempDir()
		writeCountries(t, root, "Chad\n\nPeru\n")
		p := newFilePipeline(t, root, domain.BlankLineAbort)

		_, err := p.Run(context.Background())
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

		_, statErr := os.Stat(filepath.Join(root, "matches", "data.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("skip reports remaining lines", func(t *testing.T) {
		root := t.TempDir()
		writeCountries(t, root, "Chad\n\nPeru\n")
		p := newFilePipeline(t, root, domain.BlankLineSkip)

		res, err := p.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, res.Valid)
		assert.Contains(t, readReport(t, res), "Total country names: 2")
	})
}

func TestPipeline_MissingInputProducesDegenerateReport(t *testing.T) {
	root := t.TempDir()
	p := newFilePipeline(t, root, domain.BlankLineAbort)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, res.LoadErr, domain.ErrIO)

	report := readReport(t, res)
	assert.Contains(t, report, "Total country names: 0")
	assert.NotContains(t, report, "Longest country name")
	assert.NotContains(t, report, "Shortest Country Name")
	assert.Contains(t, report, "Are all country names longer than 3 characters:"+fs.LineSeparator+"true")
}
