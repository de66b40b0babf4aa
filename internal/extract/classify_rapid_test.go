package extract

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/telemetrics/gitingest/internal/gitsource"
)

// --- Generators ---

func genDiffMeta() *rapid.Generator[gitsource.DiffMeta] {
	return rapid.Custom(func(t *rapid.T) gitsource.DiffMeta {
		m := gitsource.DiffMeta{
			APath:    "a/path.go",
			BPath:    "b/path.go",
			New:      rapid.Bool().Draw(t, "new"),
			Deleted:  rapid.Bool().Draw(t, "deleted"),
			Renamed:  rapid.Bool().Draw(t, "renamed"),
			PreSize:  rapid.Int64Range(0, 1<<20).Draw(t, "preSize"),
			PostSize: rapid.Int64Range(0, 1<<20).Draw(t, "postSize"),
		}
		// Blob presence consistent with the flags, as the version-control
		// layer guarantees.
		m.HasPreBlob = !m.New
		m.HasPostBlob = !m.Deleted
		if m.New && m.Deleted {
			m.Deleted = false
			m.HasPostBlob = true
		}
		return m
	})
}

// --- Property Tests ---

func TestRapidClassify_Pure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genDiffMeta().Draw(t, "meta")

		d1, t1, err1 := Classify(m)
		d2, t2, err2 := Classify(m)

		if err1 != nil || err2 != nil {
			t.Fatalf("Classify returned error on contract-consistent input: %v %v", err1, err2)
		}
		if d1 != d2 || t1 != t2 {
			t.Fatalf("Classify not deterministic: (%d,%q) vs (%d,%q)", d1, t1, d2, t2)
		}
	})
}

func TestRapidClassify_SignConvention(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genDiffMeta().Draw(t, "meta")

		delta, typ, err := Classify(m)
		if err != nil {
			t.Fatalf("Classify returned error: %v", err)
		}

		switch {
		case m.Deleted && !m.HasPostBlob:
			if delta != -m.PreSize {
				t.Fatalf("deletion delta = %d, expected %d", delta, -m.PreSize)
			}
		case m.New && !m.HasPreBlob:
			if delta != m.PostSize {
				t.Fatalf("addition delta = %d, expected %d", delta, m.PostSize)
			}
		default:
			if delta != m.PreSize-m.PostSize {
				t.Fatalf("modification delta = %d, expected %d", delta, m.PreSize-m.PostSize)
			}
		}

		if m.Renamed && typ != ChangeRename {
			t.Fatalf("renamed metadata classified as %q, expected R", typ)
		}
	})
}
