package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"datefmt/internal/calendar"
	"datefmt/internal/tokens"
)

// ValidationSeverity represents the severity of a validation issue.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// ConfigValidationError represents a single validation issue.
type ConfigValidationError struct {
	Field    string             // Config field with issue (e.g., "sourceDirectories[0]")
	Message  string             // Human-readable description
	Severity ValidationSeverity // "error" or "warning"
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ConfigValidationError
	Warnings []ConfigValidationError
	Valid    bool // True if no errors (warnings OK)
}

func (r *ValidationResult) add(issues []ConfigValidationError) {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			r.Errors = append(r.Errors, issue)
		} else {
			r.Warnings = append(r.Warnings, issue)
		}
	}
}

// ValidateConfig checks the configuration for errors and returns all findings.
func ValidateConfig(cfg *Configuration) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ConfigValidationError{},
		Warnings: []ConfigValidationError{},
	}

	result.add(ValidatePaths(cfg))
	result.add(ValidateFormats(cfg))
	result.add(ValidateSettings(cfg))

	result.Valid = len(result.Errors) == 0

	return result
}

// ValidatePaths checks that source directories exist and the output
// directory exists or can be created.
func ValidatePaths(cfg *Configuration) []ConfigValidationError {
	var errors []ConfigValidationError

	if len(cfg.SourceDirectories) == 0 {
		errors = append(errors, ConfigValidationError{
			Field:    "sourceDirectories",
			Message:  "at least one source directory is required",
			Severity: SeverityError,
		})
	}

	for i, dir := range cfg.SourceDirectories {
		info, err := os.Stat(dir)
		if err != nil {
			message := "error accessing directory: " + err.Error()
			if os.IsNotExist(err) {
				message = "directory does not exist: " + dir
			} else if os.IsPermission(err) {
				message = "directory is not accessible: " + dir
			}
			errors = append(errors, ConfigValidationError{
				Field:    formatField("sourceDirectories", i),
				Message:  message,
				Severity: SeverityError,
			})
			continue
		}

		if !info.IsDir() {
			errors = append(errors, ConfigValidationError{
				Field:    formatField("sourceDirectories", i),
				Message:  "path is not a directory: " + dir,
				Severity: SeverityError,
			})
		}
	}

	if cfg.OutputDirectory == "" {
		return errors
	}

	info, err := os.Stat(cfg.OutputDirectory)
	switch {
	case err == nil && !info.IsDir():
		errors = append(errors, ConfigValidationError{
			Field:    "outputDirectory",
			Message:  "path exists but is not a directory: " + cfg.OutputDirectory,
			Severity: SeverityError,
		})
	case err != nil && os.IsNotExist(err):
		parent := filepath.Dir(cfg.OutputDirectory)
		if parentInfo, parentErr := os.Stat(parent); parentErr != nil || !parentInfo.IsDir() {
			errors = append(errors, ConfigValidationError{
				Field:    "outputDirectory",
				Message:  "parent directory does not exist: " + parent,
				Severity: SeverityError,
			})
		}
	case err != nil:
		errors = append(errors, ConfigValidationError{
			Field:    "outputDirectory",
			Message:  "error accessing directory: " + err.Error(),
			Severity: SeverityError,
		})
	}

	output := ResolvePath(cfg.OutputDirectory)
	for i, dir := range cfg.SourceDirectories {
		if ResolvePath(dir) == output {
			errors = append(errors, ConfigValidationError{
				Field:    "outputDirectory",
				Message:  "output directory is the same as " + formatField("sourceDirectories", i),
				Severity: SeverityError,
			})
		}
	}

	return errors
}

// ValidateFormats checks that the input format can yield a date and that
// both formats only use known codes.
func ValidateFormats(cfg *Configuration) []ConfigValidationError {
	var errors []ConfigValidationError

	parseable, hasYear := 0, false
	for _, occ := range tokens.Scan(cfg.InputFormat) {
		if !occ.Known {
			errors = append(errors, unknownCode("inputFormat", occ))
			continue
		}
		if tokens.IsParse(occ.Code) {
			parseable++
		}
		if occ.Code == 'Y' {
			hasYear = true
		}
	}

	switch {
	case parseable == 0:
		errors = append(errors, ConfigValidationError{
			Field:    "inputFormat",
			Message:  "input format contains no code that can be parsed",
			Severity: SeverityError,
		})
	case !hasYear:
		errors = append(errors, ConfigValidationError{
			Field:    "inputFormat",
			Message:  "input format has no %Y; no line will ever yield a date",
			Severity: SeverityWarning,
		})
	}

	known := 0
	for _, occ := range tokens.Scan(cfg.OutputFormat) {
		if !occ.Known {
			errors = append(errors, unknownCode("outputFormat", occ))
			continue
		}
		known++
	}
	if known == 0 {
		errors = append(errors, ConfigValidationError{
			Field:    "outputFormat",
			Message:  "output format contains no format code",
			Severity: SeverityWarning,
		})
	}

	return errors
}

func unknownCode(field string, occ tokens.Occurrence) ConfigValidationError {
	return ConfigValidationError{
		Field:    field,
		Message:  "unknown code %" + string(rune(occ.Code)) + " at offset " + strconv.Itoa(occ.Offset) + " is kept as text",
		Severity: SeverityWarning,
	}
}

// ValidateSettings checks the verify depth, log level, scan and watch settings.
func ValidateSettings(cfg *Configuration) []ConfigValidationError {
	var errors []ConfigValidationError

	if cfg.VerifyDepth != "" {
		if _, err := calendar.ParseDepth(cfg.VerifyDepth); err != nil {
			errors = append(errors, ConfigValidationError{
				Field:    "verifyDepth",
				Message:  "invalid verify depth: \"" + cfg.VerifyDepth + "\". Must be one of year, month, day, hour, minute, second or instant",
				Severity: SeverityError,
			})
		}
	}

	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			errors = append(errors, ConfigValidationError{
				Field:    "logLevel",
				Message:  "invalid log level: \"" + cfg.LogLevel + "\"",
				Severity: SeverityError,
			})
		}
	}

	if cfg.MaxDepth < -1 {
		errors = append(errors, ConfigValidationError{
			Field:    "maxDepth",
			Message:  "maxDepth must be -1 (unlimited) or a non-negative integer",
			Severity: SeverityError,
		})
	}

	for i, ext := range cfg.Extensions {
		if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext, `/\`) {
			errors = append(errors, ConfigValidationError{
				Field:    formatField("extensions", i),
				Message:  "invalid extension: \"" + ext + "\". Must start with a dot, e.g. \".txt\"",
				Severity: SeverityError,
			})
		}
	}

	if cfg.Watch != nil {
		if cfg.Watch.DebounceSeconds < 0 {
			errors = append(errors, ConfigValidationError{
				Field:    "watch.debounceSeconds",
				Message:  "debounceSeconds must be a non-negative integer",
				Severity: SeverityError,
			})
		}
		for i, pattern := range cfg.Watch.IgnorePatterns {
			if _, err := filepath.Match(pattern, pattern); err != nil {
				errors = append(errors, ConfigValidationError{
					Field:    formatField("watch.ignorePatterns", i),
					Message:  "invalid glob pattern: " + pattern,
					Severity: SeverityError,
				})
			}
		}
	}

	return errors
}

// ResolvePath returns the absolute form of path with symlinks resolved.
// Parts that do not exist yet are kept as they are.
func ResolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	dir, base := filepath.Split(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolved, base)
	}
	return abs
}

// formatField creates a field reference string for validation errors.
func formatField(name string, index int) string {
	return name + "[" + strconv.Itoa(index) + "]"
}
