// Package gitsource wraps go-git behind the narrow capability the extractor
// needs: acquire a repository from a path or clone URL, resolve revisions to
// commit sequences, and read per-commit stats and structural diffs.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrRevisionNotFound reports that a revision specifier did not resolve.
// It is distinguishable from transport or storage failures so callers can
// drive fallback behavior off it.
var ErrRevisionNotFound = errors.New("revision not found")

var cloneSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"git":   true,
}

// Source identifies a repository by local path or clone URL.
type Source struct {
	PathOrURL string
}

// IsRemote reports whether the source must be cloned before reading.
func (s Source) IsRemote() bool {
	u, err := url.Parse(s.PathOrURL)
	if err != nil {
		return false
	}
	return cloneSchemes[u.Scheme]
}

// Handle is an open repository.
type Handle struct {
	repo   *git.Repository
	logger *slog.Logger
}

// Acquire opens a local repository, or clones a remote one into a temporary
// directory. The returned cleanup must be called on every exit path; for
// local sources it is a no-op, for clones it removes the temporary directory.
func Acquire(ctx context.Context, src Source, logger *slog.Logger) (*Handle, func(), error) {
	if !src.IsRemote() {
		repo, err := git.PlainOpen(src.PathOrURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open repository %s: %w", src.PathOrURL, err)
		}
		return &Handle{repo: repo, logger: logger}, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "gitingest-clone-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create clone directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	logger.Info("cloning repository", "url", src.PathOrURL)
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{URL: src.PathOrURL})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to clone %s: %w", src.PathOrURL, err)
	}
	return &Handle{repo: repo, logger: logger}, cleanup, nil
}

// ResolveCommits resolves a revision specifier and returns its commit
// sequence in the requested order. An unknown revision yields
// ErrRevisionNotFound; other failures are transport/storage errors.
//
// The returned iterator is single-pass and must be closed by the caller.
func (h *Handle) ResolveCommits(rev string, order Order) (object.CommitIter, error) {
	hash, err := h.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%q: %w", rev, ErrRevisionNotFound)
		}
		return nil, fmt.Errorf("failed to resolve %q: %w", rev, err)
	}

	iter, err := h.repo.Log(&git.LogOptions{From: *hash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to read log from %q: %w", rev, err)
	}

	if order == OldestFirst {
		// go-git cannot walk a log in reverse, so buffer and replay.
		return reverseCommitIter(iter)
	}
	return iter, nil
}

// RemoteName infers a repository name from the origin remote. It follows the
// convention of URLs ending in ".git": the last path segment is the name.
func (h *Handle) RemoteName() (string, bool) {
	rawURL, ok := h.RemoteURL(git.DefaultRemoteName)
	if !ok {
		return "", false
	}
	return remoteNameFromURL(rawURL)
}

func remoteNameFromURL(rawURL string) (string, bool) {
	if !strings.HasSuffix(rawURL, ".git") {
		return "", false
	}
	trimmed := strings.TrimSuffix(rawURL, ".git")
	name := trimmed[strings.LastIndexByte(trimmed, '/')+1:]
	if name == "" {
		return "", false
	}
	return name, true
}

// RemoteURL returns the first fetch URL of the named remote.
func (h *Handle) RemoteURL(remote string) (string, bool) {
	r, err := h.repo.Remote(remote)
	if err != nil {
		return "", false
	}
	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", false
	}
	return urls[0], true
}
