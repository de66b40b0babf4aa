package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/telemetrics/gitingest/internal/gitsource"
	"github.com/telemetrics/gitingest/internal/ident"
)

// Configuration errors, raised before any traversal starts.
var (
	ErrMissingIdentity = errors.New("must provide a sensor id, or both customer and source ids")
	ErrNoRepoID        = errors.New("no repo id given or auto-generation requested")
	ErrNoRepoName      = errors.New("could not infer repo name from remote")
)

// Options configures an extraction run.
type Options struct {
	Source gitsource.Source

	// Identity inputs: either SensorID, or CustomerID and SourceID from
	// which the sensor id is derived.
	SensorID   string
	CustomerID string
	SourceID   string

	// RepoID is the explicit repository identifier; when empty,
	// AutogenerateRepoID derives one from customer, source and remote name.
	RepoID             string
	AutogenerateRepoID bool

	// ForcedRepoName overrides the name inferred from the origin remote.
	ForcedRepoName string

	// LinkURL is the repository's display URL; when empty and
	// UseRemoteLinkURL is set, the origin remote URL is used.
	LinkURL          string
	UseRemoteLinkURL bool

	Order  gitsource.Order
	Filter *gitsource.Filter

	// IgnoreErrors downgrades per-commit processing failures to logged
	// skips; the skip count is reported when the run ends.
	IgnoreErrors bool
}

// Extractor walks a revision range and yields repo and commit records
// (diffs embedded in their commits).
type Extractor struct {
	opts     Options
	sensorID string
	logger   *slog.Logger
	acquire  func(ctx context.Context) (gitsource.Repository, func(), error)
}

// NewExtractor validates identity inputs and builds an extractor that
// acquires its repository from opts.Source (cloning remote URLs into a
// temporary directory for the duration of the run).
func NewExtractor(opts Options, logger *slog.Logger) (*Extractor, error) {
	e, err := newExtractor(opts, logger)
	if err != nil {
		return nil, err
	}
	e.acquire = func(ctx context.Context) (gitsource.Repository, func(), error) {
		return gitsource.Acquire(ctx, opts.Source, logger)
	}
	return e, nil
}

// NewExtractorFromRepository builds an extractor over an already acquired
// repository. Used by tests and callers that manage the handle themselves.
func NewExtractorFromRepository(opts Options, repo gitsource.Repository, logger *slog.Logger) (*Extractor, error) {
	e, err := newExtractor(opts, logger)
	if err != nil {
		return nil, err
	}
	e.acquire = func(context.Context) (gitsource.Repository, func(), error) {
		return repo, func() {}, nil
	}
	return e, nil
}

func newExtractor(opts Options, logger *slog.Logger) (*Extractor, error) {
	if opts.SensorID == "" && (opts.CustomerID == "" || opts.SourceID == "") {
		return nil, ErrMissingIdentity
	}
	if opts.RepoID == "" && !opts.AutogenerateRepoID {
		return nil, ErrNoRepoID
	}

	sensorID := opts.SensorID
	if sensorID == "" {
		sensorID = ident.Sensor(opts.CustomerID, ident.SourceTypeGit, opts.SourceID)
	}
	return &Extractor{opts: opts, sensorID: sensorID, logger: logger}, nil
}

// Extract walks rev (falling back once to fallback if rev does not resolve)
// and calls emit for each record: one commit record per traversed commit,
// then exactly one repo record. Emit errors abort the run.
func (e *Extractor) Extract(ctx context.Context, rev, fallback string, emit func(Record) error) error {
	repo, cleanup, err := e.acquire(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	remoteName, _ := repo.RemoteName()
	name := e.opts.ForcedRepoName
	if name == "" {
		name = remoteName
	}
	if name == "" {
		return ErrNoRepoName
	}

	repoID := e.opts.RepoID
	if repoID == "" {
		idName := remoteName
		if idName == "" {
			idName = name
		}
		e.logger.Info("deriving repo id from name", "name", idName)
		repoID = ident.GitRepo(e.opts.CustomerID, e.opts.SourceID, idName)
	}

	e.logger.Info("starting extract", "repo", name, "rev", rev)

	assembler := &Assembler{
		SensorID: e.sensorID,
		RepoID:   repoID,
		Filter:   e.opts.Filter,
		Logger:   e.logger,
	}

	walker := gitsource.NewWalker(repo, e.logger)
	iter, err := walker.Walk(rev, fallback, e.opts.Order)
	if err != nil {
		return err
	}
	defer iter.Close()

	skipped := 0
	err = iter.ForEach(func(c *object.Commit) error {
		commit, err := e.commitRecord(ctx, repo, assembler, repoID, c)
		if err != nil {
			if e.opts.IgnoreErrors {
				skipped++
				e.logger.Warn("skipping commit", "commit", c.Hash.String(), "error", err)
				return nil
			}
			return fmt.Errorf("failed to process commit %s: %w", c.Hash, err)
		}
		return emit(Record{Kind: KindCommit, Commit: commit})
	})
	if err != nil {
		return err
	}
	if skipped > 0 {
		e.logger.Warn("commits skipped due to processing errors", "count", skipped)
	}

	linkURL := e.opts.LinkURL
	if linkURL == "" && e.opts.UseRemoteLinkURL {
		linkURL, _ = repo.RemoteURL("origin")
	}

	return emit(Record{Kind: KindRepo, Repo: &Repository{
		ID:       repoID,
		SensorID: e.sensorID,
		Name:     name,
		URL:      linkURL,
	}})
}

func (e *Extractor) commitRecord(ctx context.Context, repo gitsource.Repository, assembler *Assembler, repoID string, c *object.Commit) (*Commit, error) {
	stats, err := repo.CommitStats(ctx, c)
	if err != nil {
		return nil, err
	}
	metas, err := repo.CommitDiffs(ctx, c)
	if err != nil {
		return nil, err
	}
	diffs, err := assembler.Assemble(c, metas, stats)
	if err != nil {
		return nil, err
	}

	parents := make([]string, len(c.ParentHashes))
	for i, p := range c.ParentHashes {
		parents[i] = ident.GitCommit(p.String())
	}

	return &Commit{
		ID:             ident.GitCommit(c.Hash.String()),
		SensorID:       e.sensorID,
		RepoID:         repoID,
		Hexsha:         c.Hash.String(),
		AuthorName:     c.Author.Name,
		AuthorEmail:    c.Author.Email,
		CommitterName:  c.Committer.Name,
		CommitterEmail: c.Committer.Email,
		AuthoredDate:   c.Author.When.Unix(),
		CommittedDate:  c.Committer.When.Unix(),
		Message:        c.Message,
		Summary:        firstLine(c.Message),
		Parents:        parents,
		Diffs:          diffs,
	}, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
