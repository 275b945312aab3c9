// Package converter rewrites the dates found in text files from one format
// to another, one line at a time.
package converter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"datefmt/internal/calendar"
	"datefmt/internal/config"
	"datefmt/internal/strtime"
)

const logModule = "converter"

// ConvertErrorType represents the type of conversion error.
type ConvertErrorType string

const (
	ReadFailed      ConvertErrorType = "READ_FAILED"
	WriteFailed     ConvertErrorType = "WRITE_FAILED"
	InvalidSettings ConvertErrorType = "INVALID_SETTINGS"
	OutputIsSource  ConvertErrorType = "OUTPUT_IS_SOURCE"
	DuplicateOutput ConvertErrorType = "DUPLICATE_OUTPUT"
)

// ConvertError represents an error that occurred while converting a file.
type ConvertError struct {
	Type ConvertErrorType
	Path string
	Err  error
}

func (e *ConvertError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// LineStatus describes what happened to a single line.
type LineStatus int

const (
	LineBlank LineStatus = iota
	LineConverted
	LineLossy
	LineUnparsed
)

func (s LineStatus) String() string {
	switch s {
	case LineBlank:
		return "blank"
	case LineConverted:
		return "converted"
	case LineLossy:
		return "lossy"
	case LineUnparsed:
		return "unparsed"
	default:
		return "unknown"
	}
}

// LineResult is the outcome of converting one line.
type LineResult struct {
	Input  string
	Output string    // text to write; meaningful only when Keep is true
	Date   time.Time // zero unless the line held a date
	Status LineStatus
	Keep   bool
}

// FileResult holds the per-file line counts.
type FileResult struct {
	Source      string
	Destination string
	Lines       int
	Converted   int
	Unparsed    int
	Lossy       int
}

func (r *FileResult) record(status LineStatus) {
	r.Lines++
	switch status {
	case LineConverted:
		r.Converted++
	case LineLossy:
		r.Converted++
		r.Lossy++
	case LineUnparsed:
		r.Unparsed++
	}
}

// Converter converts lines from InputFormat to OutputFormat.
type Converter struct {
	InputFormat     string
	OutputFormat    string
	OutputDirectory string
	KeepUnparsed    bool
	Verify          bool           // re-parse every output and compare at Depth
	Depth           calendar.Depth // used only when Verify is set
}

// New builds a Converter from a loaded configuration.
func New(cfg *config.Configuration) (*Converter, error) {
	c := &Converter{
		InputFormat:     cfg.InputFormat,
		OutputFormat:    cfg.OutputFormat,
		OutputDirectory: cfg.OutputDirectory,
		KeepUnparsed:    cfg.ShouldKeepUnparsed(),
	}

	if cfg.VerifyDepth != "" {
		depth, err := calendar.ParseDepth(cfg.VerifyDepth)
		if err != nil {
			return nil, &ConvertError{Type: InvalidSettings, Err: err}
		}
		c.Verify = true
		c.Depth = depth
	}

	return c, nil
}

// ConvertLine converts the date held by line.
func (c *Converter) ConvertLine(line string) LineResult {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineResult{Input: line, Output: "", Status: LineBlank, Keep: true}
	}

	date, ok := strtime.Strptime(trimmed, c.InputFormat)
	if !ok {
		return LineResult{Input: line, Output: line, Status: LineUnparsed, Keep: c.KeepUnparsed}
	}

	result := LineResult{
		Input:  line,
		Output: strtime.Strftime(date, c.OutputFormat),
		Date:   date,
		Status: LineConverted,
		Keep:   true,
	}

	if c.Verify {
		back, ok := strtime.Strptime(result.Output, c.OutputFormat)
		if !ok || !calendar.Equal(date, back, c.Depth) {
			result.Status = LineLossy
		}
	}

	return result
}

// ConvertReader converts every line of r and writes the kept ones to w.
func (c *Converter) ConvertReader(r io.Reader, w io.Writer) (*FileResult, error) {
	result := &FileResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := c.ConvertLine(scanner.Text())
		result.record(line.Status)

		if line.Status == LineLossy {
			logrus.WithFields(logrus.Fields{"module": logModule, "line": result.Lines, "input": line.Input, "output": line.Output}).Warning("conversion loses precision")
		}
		if !line.Keep {
			continue
		}
		if _, err := bw.WriteString(line.Output + "\n"); err != nil {
			return result, &ConvertError{Type: WriteFailed, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return result, &ConvertError{Type: ReadFailed, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return result, &ConvertError{Type: WriteFailed, Err: err}
	}

	return result, nil
}

// Destination returns the output path for the file at path.
func (c *Converter) Destination(path string) string {
	return filepath.Join(c.OutputDirectory, filepath.Base(path))
}

// ConvertFile converts the file at path into OutputDirectory, keeping its
// name. It refuses to write over path itself.
func (c *Converter) ConvertFile(path string) (*FileResult, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, &ConvertError{Type: ReadFailed, Path: path, Err: err}
	}
	defer in.Close()

	destination := c.Destination(path)
	if sameFile(path, destination) {
		return nil, &ConvertError{Type: OutputIsSource, Path: path, Err: errors.New("destination " + destination + " is the source file")}
	}

	if err := os.MkdirAll(c.OutputDirectory, 0755); err != nil {
		return nil, &ConvertError{Type: WriteFailed, Path: c.OutputDirectory, Err: err}
	}

	out, err := os.Create(destination)
	if err != nil {
		return nil, &ConvertError{Type: WriteFailed, Path: destination, Err: err}
	}

	result, err := c.ConvertReader(in, out)
	closeErr := out.Close()
	if err != nil {
		if convErr, ok := err.(*ConvertError); ok {
			convErr.Path = path
		}
		return result, err
	}
	if closeErr != nil {
		return result, &ConvertError{Type: WriteFailed, Path: destination, Err: closeErr}
	}

	result.Source = path
	result.Destination = destination

	logrus.WithFields(logrus.Fields{
		"module":      logModule,
		"source":      path,
		"destination": destination,
		"lines":       result.Lines,
		"converted":   result.Converted,
		"unparsed":    result.Unparsed,
	}).Debug("file converted")

	return result, nil
}

func sameFile(a, b string) bool {
	if config.ResolvePath(a) == config.ResolvePath(b) {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
