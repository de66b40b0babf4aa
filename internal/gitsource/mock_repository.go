package gitsource

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// MockRepository is a test double for Handle.
// It allows tests to provide predefined commit data without needing a real
// Git repository.
type MockRepository struct {
	// Commits, newest first, keyed per revision specifier. Revisions not
	// present resolve as not found.
	Revisions map[string][]*object.Commit

	// Stats and Diffs are keyed by commit hex SHA.
	Stats map[string][]FileStat
	Diffs map[string][]DiffMeta

	// Remote metadata; empty means no remote configured.
	OriginURL string

	// Forced errors, keyed by commit hex SHA.
	StatsErr map[string]error

	// ResolveErr is returned verbatim from ResolveCommits for any revision,
	// simulating transport failures.
	ResolveErr error
}

// ResolveCommits returns the predefined sequence for rev.
func (m *MockRepository) ResolveCommits(rev string, order Order) (object.CommitIter, error) {
	if m.ResolveErr != nil {
		return nil, m.ResolveErr
	}
	commits, ok := m.Revisions[rev]
	if !ok {
		return nil, fmt.Errorf("%q: %w", rev, ErrRevisionNotFound)
	}
	if order == OldestFirst {
		reversed := make([]*object.Commit, len(commits))
		for i, c := range commits {
			reversed[len(commits)-1-i] = c
		}
		return NewSliceCommitIter(reversed), nil
	}
	return NewSliceCommitIter(commits), nil
}

// CommitStats returns the predefined stats for the commit.
func (m *MockRepository) CommitStats(_ context.Context, c *object.Commit) ([]FileStat, error) {
	if err := m.StatsErr[c.Hash.String()]; err != nil {
		return nil, err
	}
	return m.Stats[c.Hash.String()], nil
}

// CommitDiffs returns the predefined diff metadata for the commit.
func (m *MockRepository) CommitDiffs(_ context.Context, c *object.Commit) ([]DiffMeta, error) {
	return m.Diffs[c.Hash.String()], nil
}

// RemoteName derives a name from OriginURL the same way Handle does.
func (m *MockRepository) RemoteName() (string, bool) {
	if m.OriginURL == "" {
		return "", false
	}
	return remoteNameFromURL(m.OriginURL)
}

// RemoteURL returns OriginURL for the origin remote.
func (m *MockRepository) RemoteURL(remote string) (string, bool) {
	if remote != "origin" || m.OriginURL == "" {
		return "", false
	}
	return m.OriginURL, true
}

// Compile-time interface conformance check.
var _ Repository = (*MockRepository)(nil)
