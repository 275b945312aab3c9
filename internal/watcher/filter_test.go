package watcher

import "testing"

func TestNewFileFilter_Defaults(t *testing.T) {
	for _, patterns := range [][]string{nil, {}} {
		filter := NewFileFilter(patterns)
		if !filter.ShouldIgnore("dates.txt.swp") || filter.ShouldIgnore("dates.txt") {
			t.Errorf("expected default patterns for %v", patterns)
		}
	}
}

func TestFileFilter_ShouldIgnore_Defaults(t *testing.T) {
	filter := NewFileFilter(nil)

	tests := []struct {
		path     string
		expected bool
	}{
		{"/logs/access.tmp", true},
		{"upload.part", true},
		{"/logs/.dates.txt.swp", true},
		{".dates.txt.swx", true},
		{"dates.txt~", true},
		{".~lock.dates.csv#", true},

		{"/logs/access.log", false},
		{"dates.txt", false},
		{"file.template", false},
		{"file.party", false},
		{"swp.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.ShouldIgnore(tt.path); got != tt.expected {
				t.Errorf("ShouldIgnore(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFileFilter_ShouldIgnore_CustomPatterns(t *testing.T) {
	filter := NewFileFilter([]string{"*.csv", ".BAK", "draft-??.txt", "[0-9]*"})

	tests := []struct {
		path     string
		expected bool
	}{
		{"export.csv", true},
		{"dates.txt.bak", true},
		{"DATES.BAK", true},
		{"draft-01.txt", true},
		{"2009-06-05.log", true},

		{"draft-001.txt", false},
		{"dates.txt", false},
		{"file.tmp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.ShouldIgnore(tt.path); got != tt.expected {
				t.Errorf("ShouldIgnore(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
