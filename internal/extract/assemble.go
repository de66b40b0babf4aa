package extract

import (
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/telemetrics/gitingest/internal/gitsource"
	"github.com/telemetrics/gitingest/internal/ident"
)

// Assembler merges a commit's aggregate stats with its structural diff
// metadata into fully populated diff records.
type Assembler struct {
	SensorID string
	RepoID   string
	Filter   *gitsource.Filter
	Logger   *slog.Logger
}

// Assemble pairs each stats entry with the diff metadata whose a_path equals
// the stats path with rename notation stripped. Stats entries with no
// matching metadata are logged at debug and dropped; that partial loss is
// accepted policy. A metadata entry violating the blob contract is fatal.
func (a *Assembler) Assemble(c *object.Commit, metas []gitsource.DiffMeta, stats []gitsource.FileStat) ([]Diff, error) {
	byPath := make(map[string]gitsource.DiffMeta, len(metas))
	for _, m := range metas {
		byPath[m.APath] = m
	}

	diffs := make([]Diff, 0, len(stats))
	for _, stat := range stats {
		canonical := CanonicalPath(stat.RawPath)
		if a.Filter != nil && !a.Filter.Match(canonical) {
			continue
		}

		meta, ok := byPath[canonical]
		if !ok {
			a.Logger.Debug("no diff metadata for stats path", "path", canonical, "commit", c.Hash.String())
			continue
		}

		delta, typ, err := Classify(meta)
		if err != nil {
			return nil, err
		}

		diffs = append(diffs, Diff{
			ID:         ident.GitCommitDiff(c.Hash.String(), stat.RawPath),
			SensorID:   a.SensorID,
			RepoID:     a.RepoID,
			CommitID:   ident.GitCommit(c.Hash.String()),
			APath:      meta.APath,
			BPath:      meta.BPath,
			AObjectID:  ident.GitPath(a.RepoID, meta.APath),
			BObjectID:  ident.GitPath(a.RepoID, meta.BPath),
			SizeDelta:  delta,
			Type:       typ,
			Insertions: stat.Added,
			Deletions:  stat.Deleted,
			Lines:      stat.Lines(),
		})
	}
	return diffs, nil
}
