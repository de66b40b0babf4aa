package gitsource

// FileStat holds aggregate line counts for one file in a commit, keyed by the
// raw path as git reports it. For renamed files the raw path carries git's
// compact rename notation (see FormatRenamePath).
type FileStat struct {
	RawPath string
	Added   int
	Deleted int
}

// Lines returns total lines changed (added + deleted).
func (s FileStat) Lines() int {
	return s.Added + s.Deleted
}

// DiffMeta describes one file's structural change between a commit and its
// first parent (or the empty tree for root commits).
//
// APath and BPath are the pre- and post-change paths; they are equal unless
// the file was renamed. HasPreBlob/HasPostBlob report whether a readable blob
// exists on each side; sizes are only meaningful when the corresponding flag
// is set.
type DiffMeta struct {
	APath       string
	BPath       string
	PreSize     int64
	PostSize    int64
	HasPreBlob  bool
	HasPostBlob bool
	New         bool
	Deleted     bool
	Renamed     bool
}

// Order controls commit iteration direction.
type Order int

const (
	// OldestFirst yields commits from the root of the range forward.
	OldestFirst Order = iota
	// NewestFirst yields commits starting at the resolved revision.
	NewestFirst
)

// FormatRenamePath renders a rename as git's compact stat notation:
// a shared directory prefix/suffix is folded outside braces
// ("dir/{a => b}/f.go"), a whole-path rename stays unbraced ("a.go => b.go").
// Equal paths are returned as-is.
func FormatRenamePath(from, to string) string {
	if from == to || from == "" || to == "" {
		if from != "" {
			return from
		}
		return to
	}

	prefix := commonDirPrefix(from, to)
	f, t := from[len(prefix):], to[len(prefix):]
	suffix := commonDirSuffix(f, t)
	f, t = f[:len(f)-len(suffix)], t[:len(t)-len(suffix)]

	if prefix == "" && suffix == "" {
		return from + " => " + to
	}
	return prefix + "{" + f + " => " + t + "}" + suffix
}

// commonDirPrefix returns the longest shared prefix ending at a '/' boundary.
func commonDirPrefix(a, b string) string {
	n := 0
	for i := 0; i < len(a) && i < len(b) && a[i] == b[i]; i++ {
		if a[i] == '/' {
			n = i + 1
		}
	}
	return a[:n]
}

// commonDirSuffix returns the longest shared suffix starting at a '/' boundary.
func commonDirSuffix(a, b string) string {
	n := 0
	for i := 1; i <= len(a) && i <= len(b); i++ {
		ca, cb := a[len(a)-i], b[len(b)-i]
		if ca != cb {
			break
		}
		if ca == '/' {
			n = i
		}
	}
	if n == 0 {
		return ""
	}
	return a[len(a)-n:]
}
