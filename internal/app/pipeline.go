package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/countryreport/internal/analysis"
	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

// PipelineConfig locates the input file and the report artifact.
type PipelineConfig struct {
	InputPath string
	RootDir   string
	SubDir    string
	FileName  string
}

// SectionStatus describes what happened to one section of a run.
type SectionStatus string

const (
	SectionWritten SectionStatus = "ok"
	SectionSkipped SectionStatus = "skipped"
	SectionFailed  SectionStatus = "failed"
)

// SectionResult records the outcome of one analysis.
type SectionResult struct {
	Name   string
	Lines  int
	Status SectionStatus
	Err    error
}

// Result summarizes a single run.
type Result struct {
	RunID      string
	ReportPath string
	Loaded     int
	Valid      int
	LoadErr    error
	PrepareErr error
	PublishErr error
	Sections   []SectionResult
	Duration   time.Duration
}

// Failed returns the number of sections that could not be written.
func (r Result) Failed() int {
	n := 0
	for _, s := range r.Sections {
		if s.Status == SectionFailed {
			n++
		}
	}
	return n
}

// Pipeline loads countries, runs the analysis battery and writes one report
// section per analysis. It holds no state between runs.
type Pipeline struct {
	config    PipelineConfig
	loader    ports.CountryLoader
	sink      ports.ReportSink
	publisher ports.ReportPublisher
	logger    ports.Logger
	battery   []analysis.Analysis
}

// NewPipeline creates a pipeline. publisher may be nil.
func NewPipeline(
	config PipelineConfig,
	loader ports.CountryLoader,
	sink ports.ReportSink,
	publisher ports.ReportPublisher,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		config:    config,
		loader:    loader,
		sink:      sink,
		publisher: publisher,
		logger:    logger,
		battery:   analysis.Battery(),
	}
}

// Run executes one full report run.
//
// Input and write failures are logged and the run carries on: an unreadable
// input becomes an empty list and a failed section does not stop the sections
// after it. The only error returned is a rejected input line, in which case no
// report is produced.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString()}
	runID := ports.String("run_id", res.RunID)
	ctx = ports.WithRunID(ctx, res.RunID)

	countries, err := p.loader.Load(ctx, p.config.InputPath)
	if err != nil {
		if domain.IsKind(err, domain.KindInvalidArgument) {
			p.logger.Error("input rejected, report not written", runID, ports.Err(err))
			return res, fmt.Errorf("load input: %w", err)
		}
		p.logger.Error("error reading input, continuing with no countries", runID, ports.Err(err))
		res.LoadErr = err
		countries = nil
	}
	res.Loaded = len(countries)

	path, err := p.sink.Prepare(ctx, p.config.RootDir, p.config.SubDir, p.config.FileName)
	res.ReportPath = path
	if err != nil {
		p.logger.Error("error preparing report file", runID, ports.Err(err))
		res.PrepareErr = err
	}

	entries := domain.ValidEntries(countries)
	res.Valid = len(entries)

	for _, a := range p.battery {
		section := a.Run(entries)
		res.Sections = append(res.Sections, p.write(ctx, path, section, runID))
	}

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, path); err != nil {
			p.logger.Error("error publishing report", runID, ports.Err(err))
			res.PublishErr = err
		}
	}

	res.Duration = time.Since(start)
	p.logger.Info("report written",
		runID,
		ports.String("path", path),
		ports.Int("countries", res.Valid),
		ports.Int("failed_sections", res.Failed()),
		ports.Duration("duration", res.Duration),
	)
	return res, nil
}

func (p *Pipeline) write(ctx context.Context, path string, s domain.Section, runID ports.Field) SectionResult {
	out := SectionResult{Name: s.Name, Lines: s.Lines()}
	if s.Skip {
		out.Status = SectionSkipped
		p.logger.Debug("section skipped", runID, ports.String("section", s.Name))
		return out
	}

	var err error
	if s.Scalar {
		err = p.sink.AppendValue(ctx, path, s.Header, s.Value)
	} else {
		err = p.sink.AppendSection(ctx, path, s.Header, s.Body)
	}
	if err != nil {
		out.Status = SectionFailed
		out.Err = err
		p.logger.Error("error writing section", runID, ports.String("section", s.Name), ports.Err(err))
		return out
	}

	out.Status = SectionWritten
	p.logger.Debug("section written", runID, ports.String("section", s.Name), ports.Int("lines", out.Lines))
	return out
}
