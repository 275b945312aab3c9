package converter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"datefmt/internal/config"
	"datefmt/internal/scanner"
)

// Progress receives per-file notifications during Run.
type Progress interface {
	StartProgress(total int)
	UpdateProgress(current int, message string)
	EndProgress()
}

// Summary represents the overall results of a conversion run.
type Summary struct {
	Files      int
	Lines      int
	Converted  int
	Unparsed   int
	Lossy      int
	Results    []FileResult
	Errors     []error
	ScanErrors []error
	Duration   time.Duration
}

// Add folds a file result into the totals.
func (s *Summary) Add(r *FileResult) {
	s.Files++
	s.Lines += r.Lines
	s.Converted += r.Converted
	s.Unparsed += r.Unparsed
	s.Lossy += r.Lossy
	s.Results = append(s.Results, *r)
}

// HasErrors returns true if there were any errors during the run.
func (s *Summary) HasErrors() bool {
	return len(s.Errors) > 0 || len(s.ScanErrors) > 0
}

// String returns a one-line summary with humanized counts.
func (s *Summary) String() string {
	return fmt.Sprintf("Converted %s of %s lines in %s files (%s unparsed, %s lossy, %d errors) in %s",
		humanize.Comma(int64(s.Converted)),
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Files)),
		humanize.Comma(int64(s.Unparsed)),
		humanize.Comma(int64(s.Lossy)),
		len(s.Errors)+len(s.ScanErrors),
		s.Duration.Round(time.Millisecond))
}

// Run converts every file of every source directory. Failures on a single
// directory or file are recorded in the summary and the run goes on. A file
// whose output name was already written in this run is reported, not converted.
// progress may be nil.
func Run(cfg *config.Configuration, progress Progress) (*Summary, error) {
	start := time.Now()

	c, err := New(cfg)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	opts := scanner.ScanOptions{
		MaxDepth:      cfg.MaxDepth,
		Extensions:    cfg.Extensions,
		IncludeHidden: cfg.IncludeHidden,
	}

	var files []scanner.FileEntry
	for _, sourceDir := range cfg.SourceDirectories {
		entries, err := scanner.ScanWithOptions(sourceDir, opts)
		if err != nil {
			logrus.WithFields(logrus.Fields{"module": logModule, "dir": sourceDir, "err": err}).Error("failed to scan source directory")
			summary.ScanErrors = append(summary.ScanErrors, fmt.Errorf("failed to scan %s: %w", sourceDir, err))
			continue
		}
		files = append(files, entries...)
	}

	if progress != nil {
		progress.StartProgress(len(files))
		defer progress.EndProgress()
	}

	written := make(map[string]string) // destination -> source
	for i, file := range files {
		if progress != nil {
			progress.UpdateProgress(i+1, "Converting file")
		}

		destination := config.ResolvePath(c.Destination(file.FullPath))
		if first, ok := written[destination]; ok {
			err := &ConvertError{Type: DuplicateOutput, Path: file.FullPath, Err: fmt.Errorf("output %s already written from %s", destination, first)}
			logrus.WithFields(logrus.Fields{"module": logModule, "file": file.FullPath, "err": err}).Error("failed to convert file")
			summary.Errors = append(summary.Errors, err)
			continue
		}

		result, err := c.ConvertFile(file.FullPath)
		if err != nil {
			logrus.WithFields(logrus.Fields{"module": logModule, "file": file.FullPath, "err": err}).Error("failed to convert file")
			summary.Errors = append(summary.Errors, err)
			continue
		}
		written[destination] = file.FullPath
		summary.Add(result)
	}

	summary.Duration = time.Since(start)

	logrus.WithFields(logrus.Fields{
		"module":    logModule,
		"files":     summary.Files,
		"lines":     summary.Lines,
		"converted": summary.Converted,
		"errors":    len(summary.Errors) + len(summary.ScanErrors),
		"duration":  summary.Duration,
	}).Info("conversion run finished")

	return summary, nil
}
