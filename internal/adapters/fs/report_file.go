package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

// LineSeparator terminates every line of the report.
var LineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

var _ ports.ReportSink = (*ReportFile)(nil)

// ReportFile implements ports.ReportSink on a plain text file.
// Every section after the first is preceded by one blank line. The file is
// reopened for each append so no handle outlives a single write.
type ReportFile struct {
	logger ports.Logger
}

// NewReportFile creates a report sink.
func NewReportFile(logger ports.Logger) *ReportFile {
	return &ReportFile{logger: logger}
}

// Prepare creates rootDir and rootDir/subDir when missing and leaves an empty
// file at rootDir/subDir/fileName, deleting any file left by a previous run.
func (r *ReportFile) Prepare(ctx context.Context, rootDir, subDir, fileName string) (string, error) {
	dir := filepath.Join(rootDir, subDir)
	path := filepath.Join(dir, fileName)

	for _, d := range []string{rootDir, dir} {
		if err := ensureDir(d); err != nil {
			return path, &domain.OpError{Op: "report.prepare", Kind: domain.KindIO, Path: d, Err: err}
		}
	}

	if _, err := os.Stat(path); err == nil {
		r.logger.Debug("report file exists, recreating", ports.RunFields(ctx, ports.String("path", path))...)
		if err := os.Remove(path); err != nil {
			return path, &domain.OpError{Op: "report.prepare", Kind: domain.KindIO, Path: path, Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePermission)
	if err != nil {
		return path, &domain.OpError{Op: "report.prepare", Kind: domain.KindIO, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return path, &domain.OpError{Op: "report.prepare", Kind: domain.KindIO, Path: path, Err: err}
	}

	r.logger.Debug("report file created", ports.RunFields(ctx, ports.String("path", path))...)
	return path, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(dir, dirPermission)
}

// AppendSection appends header and then each body line.
func (r *ReportFile) AppendSection(ctx context.Context, path, header string, body []string) error {
	return r.appendLines(path, append([]string{header}, body...))
}

// AppendValue appends header and then value on its own line.
func (r *ReportFile) AppendValue(ctx context.Context, path, header, value string) error {
	return r.appendLines(path, []string{header, value})
}

func (r *ReportFile) appendLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermission)
	if err != nil {
		return &domain.OpError{Op: "report.append", Kind: domain.KindIO, Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return &domain.OpError{Op: "report.append", Kind: domain.KindIO, Path: path, Err: err}
	}

	var buf bytes.Buffer
	if info.Size() > 0 {
		buf.WriteString(LineSeparator)
	}
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString(LineSeparator)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return &domain.OpError{Op: "report.append", Kind: domain.KindIO, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "report.append", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}
