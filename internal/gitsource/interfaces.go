package gitsource

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository is the read capability the extractor depends on.
// This abstraction allows for easier testing and potential alternative implementations.
type Repository interface {
	// ResolveCommits resolves a revision specifier to a single-pass commit
	// sequence, or ErrRevisionNotFound.
	ResolveCommits(rev string, order Order) (object.CommitIter, error)

	// CommitStats returns aggregate per-file line counts for a commit.
	CommitStats(ctx context.Context, c *object.Commit) ([]FileStat, error)

	// CommitDiffs returns structural diff metadata for a commit.
	CommitDiffs(ctx context.Context, c *object.Commit) ([]DiffMeta, error)

	// RemoteName infers the repository name from the origin remote.
	RemoteName() (string, bool)

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(remote string) (string, bool)
}

// Compile-time interface conformance check.
var _ Repository = (*Handle)(nil)
