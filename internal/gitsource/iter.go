package gitsource

import (
	"errors"
	"io"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// EmptyCommitIter returns a commit iterator that yields nothing. The walker
// uses it when a revision (and its fallback) does not exist: absent history
// means "nothing to extract", not an error.
func EmptyCommitIter() object.CommitIter {
	return NewSliceCommitIter(nil)
}

// NewSliceCommitIter returns a single-pass iterator over a fixed commit
// slice. Also used by tests to feed fabricated commits through the walker
// contract.
func NewSliceCommitIter(commits []*object.Commit) object.CommitIter {
	return &sliceCommitIter{commits: commits}
}

// reverseCommitIter drains iter and replays it in reverse order.
func reverseCommitIter(iter object.CommitIter) (object.CommitIter, error) {
	defer iter.Close()

	var commits []*object.Commit
	err := iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return NewSliceCommitIter(commits), nil
}

type sliceCommitIter struct {
	commits []*object.Commit
	pos     int
}

func (it *sliceCommitIter) Next() (*object.Commit, error) {
	if it.pos >= len(it.commits) {
		return nil, io.EOF
	}
	c := it.commits[it.pos]
	it.pos++
	return c, nil
}

func (it *sliceCommitIter) ForEach(fn func(*object.Commit) error) error {
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			if errors.Is(err, storer.ErrStop) {
				return nil
			}
			return err
		}
	}
}

func (it *sliceCommitIter) Close() {
	it.pos = len(it.commits)
}
