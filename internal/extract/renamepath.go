package extract

import (
	"regexp"
	"strings"
)

// renamePattern matches git's compact rename notation. The optional "start"
// and "end" groups capture the shared prefix and suffix outside the braces;
// "a" captures the pre-rename segment.
var renamePattern = regexp.MustCompile(`^((?P<start>.*?)/?\{)?(?P<a>.*) => .*?(\}/(?P<end>.*))?$`)

var (
	renameStartIdx = renamePattern.SubexpIndex("start")
	renameAIdx     = renamePattern.SubexpIndex("a")
	renameEndIdx   = renamePattern.SubexpIndex("end")
)

// CanonicalPath strips rename notation from a raw stats path, returning the
// pre-rename path: "dir/{old => new}/f.go" becomes "dir/old/f.go",
// "{old => new}" becomes "old", "a.go => b.go" becomes "a.go". Paths without
// rename notation pass through unchanged.
func CanonicalPath(raw string) string {
	m := renamePattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}

	parts := make([]string, 0, 3)
	for _, idx := range []int{renameStartIdx, renameAIdx, renameEndIdx} {
		if m[idx] != "" {
			parts = append(parts, m[idx])
		}
	}
	return strings.Join(parts, "/")
}
