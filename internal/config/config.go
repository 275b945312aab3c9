// Package config handles configuration loading and validation for datefmt.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Default values applied by ApplyDefaults.
const (
	DefaultOutputDirectory = "converted"
	DefaultLogLevel        = "info"
	DefaultDebounceSeconds = 2
)

// WatchConfig contains watch mode settings.
type WatchConfig struct {
	DebounceSeconds int      `json:"debounceSeconds,omitempty"`
	IgnorePatterns  []string `json:"ignorePatterns,omitempty"`
}

// Configuration holds all settings for a conversion run.
type Configuration struct {
	SourceDirectories []string     `json:"sourceDirectories"`
	OutputDirectory   string       `json:"outputDirectory,omitempty"`
	InputFormat       string       `json:"inputFormat"`
	OutputFormat      string       `json:"outputFormat"`
	VerifyDepth       string       `json:"verifyDepth,omitempty"`  // empty disables verification
	KeepUnparsed      *bool        `json:"keepUnparsed,omitempty"` // defaults to true
	LogLevel          string       `json:"logLevel,omitempty"`
	Extensions        []string     `json:"extensions,omitempty"`    // empty converts every file
	MaxDepth          int          `json:"maxDepth,omitempty"`      // subdirectory levels below each source; 0 is none, -1 is unlimited
	IncludeHidden     bool         `json:"includeHidden,omitempty"` // dot files and dot directories
	Watch             *WatchConfig `json:"watch,omitempty"`
}

// Validate checks that the configuration has all required fields.
func (c *Configuration) Validate() error {
	if len(c.SourceDirectories) == 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "sourceDirectories must contain at least one directory",
		}
	}

	for i, dir := range c.SourceDirectories {
		if dir == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("sourceDirectories[%d] cannot be empty", i),
			}
		}
	}

	if c.InputFormat == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "inputFormat cannot be empty",
		}
	}

	if c.OutputFormat == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "outputFormat cannot be empty",
		}
	}

	return nil
}

// ApplyDefaults fills in zero values with their defaults.
func (c *Configuration) ApplyDefaults() {
	if c.OutputDirectory == "" {
		c.OutputDirectory = DefaultOutputDirectory
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.KeepUnparsed == nil {
		keep := true
		c.KeepUnparsed = &keep
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
	if c.Watch.DebounceSeconds == 0 {
		c.Watch.DebounceSeconds = DefaultDebounceSeconds
	}
}

// ShouldKeepUnparsed reports whether lines without a date are copied to the output.
func (c *Configuration) ShouldKeepUnparsed() bool {
	return c.KeepUnparsed == nil || *c.KeepUnparsed
}

// Load reads, validates and completes a configuration file from the given path.
func Load(filePath string) (*Configuration, error) {
	config, err := read(filePath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.ApplyDefaults()

	return config, nil
}

func read(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	return &config, nil
}

// Save serializes and writes a configuration to the given path.
func Save(config *Configuration, filePath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("failed to write configuration file: %s", err.Error()),
		}
	}

	return nil
}
