// Package pipeline collects extractor output, enforces run invariants and
// forwards the final record sets to a sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/telemetrics/gitingest/internal/extract"
	"github.com/telemetrics/gitingest/internal/sink"
)

// ErrRepoRecordCount reports a run that produced anything other than exactly
// one repository record. This is an invariant violation, not a data
// condition: nothing is written when it fires.
var ErrRepoRecordCount = errors.New("expected exactly one repo record")

// Extractor produces the record stream the pipeline ingests.
type Extractor interface {
	Extract(ctx context.Context, rev, fallback string, emit func(extract.Record) error) error
}

// Pipeline ingests one extraction run into a sink.
type Pipeline struct {
	Sink   sink.Sink
	Logger *slog.Logger
}

// Run drives the extractor over the revision range, then sorts commits by
// authored date, flattens their embedded diffs and writes the three record
// sets, each partitioned by the run's repository id. The sink is only
// invoked after the full stream has been collected, so a failed run leaves
// no partial output.
func (p *Pipeline) Run(ctx context.Context, ex Extractor, rev, fallback string) error {
	var (
		repos   []*extract.Repository
		commits []*extract.Commit
	)

	err := ex.Extract(ctx, rev, fallback, func(rec extract.Record) error {
		switch rec.Kind {
		case extract.KindRepo:
			repos = append(repos, rec.Repo)
		case extract.KindCommit:
			commits = append(commits, rec.Commit)
		default:
			return fmt.Errorf("unexpected record kind: %s", rec.Kind)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(repos) != 1 {
		return fmt.Errorf("%w, got %d", ErrRepoRecordCount, len(repos))
	}
	repo := repos[0]

	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].AuthoredDate < commits[j].AuthoredDate
	})

	commitRecs := make([]any, len(commits))
	var diffRecs []any
	for i, c := range commits {
		for _, d := range c.Diffs {
			diffRecs = append(diffRecs, d)
		}
		c.Diffs = nil
		commitRecs[i] = c
	}

	if err := p.Sink.Write(extract.KindRepo, repo.ID, []any{repo}); err != nil {
		return err
	}
	if err := p.Sink.Write(extract.KindCommit, repo.ID, commitRecs); err != nil {
		return err
	}
	if err := p.Sink.Write(extract.KindDiff, repo.ID, diffRecs); err != nil {
		return err
	}

	p.Logger.Info("ingested repo",
		"repo", repo.Name,
		"commits", len(commitRecs),
		"diffs", len(diffRecs),
	)
	return nil
}
