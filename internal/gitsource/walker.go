package gitsource

import (
	"errors"
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Walker resolves revision specifiers to commit sequences with single-level
// fallback.
type Walker struct {
	repo   Repository
	logger *slog.Logger
}

// NewWalker creates a walker over the given repository.
func NewWalker(repo Repository, logger *slog.Logger) *Walker {
	return &Walker{repo: repo, logger: logger}
}

// Walk resolves rev and returns its commit sequence. When rev does not exist
// and a fallback is given, the fallback is tried once; when neither resolves,
// an empty sequence is returned rather than an error. Transport and storage
// failures propagate.
func (w *Walker) Walk(rev, fallback string, order Order) (object.CommitIter, error) {
	iter, err := w.repo.ResolveCommits(rev, order)
	if err == nil {
		return iter, nil
	}
	if !errors.Is(err, ErrRevisionNotFound) {
		return nil, err
	}

	if fallback == "" {
		w.logger.Info("revision does not exist, assuming empty history", "rev", rev)
		return EmptyCommitIter(), nil
	}

	w.logger.Info("revision does not exist, falling back", "rev", rev, "fallback", fallback)
	iter, err = w.repo.ResolveCommits(fallback, order)
	if err == nil {
		return iter, nil
	}
	if !errors.Is(err, ErrRevisionNotFound) {
		return nil, err
	}

	w.logger.Info("fallback revision does not exist, assuming empty history", "rev", fallback)
	return EmptyCommitIter(), nil
}
