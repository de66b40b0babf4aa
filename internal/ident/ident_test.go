package ident

import (
	"testing"

	"pgregory.net/rapid"
)

func TestEncode_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "Simple text", in: "hello"},
		{name: "Empty string", in: ""},
		{name: "Path-like key", in: "git-path/repo1/src/main.go"},
		{name: "Unicode", in: "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Encode(tt.in)
			second := Encode(tt.in)
			if first != second {
				t.Errorf("Encode(%q) not deterministic: %q vs %q", tt.in, first, second)
			}
			if first == "" {
				t.Errorf("Encode(%q) returned empty id", tt.in)
			}
		})
	}
}

func TestKeyBuilders_Distinct(t *testing.T) {
	ids := map[string]string{
		"sensor":      Sensor("acme", SourceTypeGit, "acme-git"),
		"repo":        GitRepo("acme", "acme-git", "widget"),
		"commit":      GitCommit("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		"commit diff": GitCommitDiff("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "main.go"),
		"path":        GitPath("repo-1", "main.go"),
	}

	seen := map[string]string{}
	for name, id := range ids {
		if other, dup := seen[id]; dup {
			t.Errorf("%s and %s produced the same id %q", name, other, id)
		}
		seen[id] = name
	}
}

func TestGitPath_SamePathSameRepo(t *testing.T) {
	a := GitPath("repo-1", "src/main.go")
	b := GitPath("repo-1", "src/main.go")
	if a != b {
		t.Errorf("GitPath not stable: %q vs %q", a, b)
	}
	if GitPath("repo-2", "src/main.go") == a {
		t.Error("GitPath should differ across repos")
	}
}

func TestRapidEncode_Base62Charset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.String().Draw(t, "in")
		id := Encode(in)
		for _, r := range id {
			isDigit := r >= '0' && r <= '9'
			isUpper := r >= 'A' && r <= 'Z'
			isLower := r >= 'a' && r <= 'z'
			if !isDigit && !isUpper && !isLower {
				t.Fatalf("Encode(%q) produced non-base62 rune %q in %q", in, r, id)
			}
		}
	})
}
