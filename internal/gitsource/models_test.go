package gitsource

import "testing"

func TestFileStat_Lines(t *testing.T) {
	tests := []struct {
		name     string
		added    int
		deleted  int
		expected int
	}{
		{name: "Both positive", added: 10, deleted: 5, expected: 15},
		{name: "Only added", added: 10, deleted: 0, expected: 10},
		{name: "Both zero", added: 0, deleted: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FileStat{Added: tt.added, Deleted: tt.deleted}
			result := s.Lines()
			if result != tt.expected {
				t.Errorf("Lines() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestFormatRenamePath(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{name: "No rename", from: "a/b.go", to: "a/b.go", expected: "a/b.go"},
		{name: "Added file", from: "", to: "new.go", expected: "new.go"},
		{name: "Deleted file", from: "old.go", to: "", expected: "old.go"},
		{name: "Whole path rename", from: "a.go", to: "b.go", expected: "a.go => b.go"},
		{name: "Segment rename", from: "dir/old/f.go", to: "dir/new/f.go", expected: "dir/{old => new}/f.go"},
		{name: "Shared prefix only", from: "dir/a.go", to: "dir/b.go", expected: "dir/{a.go => b.go}"},
		{name: "Shared suffix only", from: "x/f.go", to: "y/f.go", expected: "{x => y}/f.go"},
		{name: "Nested move", from: "a/b/c.go", to: "a/c.go", expected: "a/{b/c.go => c.go}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatRenamePath(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("FormatRenamePath(%q, %q) = %q, expected %q", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}
