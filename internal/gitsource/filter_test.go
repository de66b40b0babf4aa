package gitsource

import "testing"

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		path     string
		expected bool
	}{
		{name: "Empty filter accepts all", filter: Filter{}, path: "any/file.go", expected: true},
		{name: "Include match", filter: Filter{Include: []string{"**/*.go"}}, path: "pkg/main.go", expected: true},
		{name: "Include miss", filter: Filter{Include: []string{"**/*.go"}}, path: "README.md", expected: false},
		{name: "Exclude match", filter: Filter{Exclude: []string{"vendor/**"}}, path: "vendor/dep/x.go", expected: false},
		{name: "Exclude wins over include", filter: Filter{Include: []string{"**/*.go"}, Exclude: []string{"vendor/**"}}, path: "vendor/x.go", expected: false},
		{name: "Windows separators normalized", filter: Filter{Exclude: []string{"vendor/**"}}, path: "vendor\\dep\\x.go", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.filter.Match(tt.path)
			if result != tt.expected {
				t.Errorf("Match(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFilter_Empty(t *testing.T) {
	var nilFilter *Filter
	if !nilFilter.Empty() {
		t.Error("nil filter should be empty")
	}
	if !(&Filter{}).Empty() {
		t.Error("zero filter should be empty")
	}
	if (&Filter{Include: []string{"*.go"}}).Empty() {
		t.Error("filter with patterns should not be empty")
	}
}
