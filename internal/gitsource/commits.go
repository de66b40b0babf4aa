package gitsource

import (
	"context"
	"fmt"
	"strings"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// CommitStats returns aggregate per-file line counts for a commit, diffed
// against its first parent. Root commits diff against the empty tree, so
// every file they introduce is counted as added.
func (h *Handle) CommitStats(ctx context.Context, c *object.Commit) ([]FileStat, error) {
	changes, err := h.commitChanges(ctx, c)
	if err != nil {
		return nil, err
	}

	stats := make([]FileStat, 0, len(changes))
	for _, change := range changes {
		patch, err := change.PatchContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to compute patch for %s: %w", changeName(change), err)
		}

		var added, deleted int
		for _, fp := range patch.FilePatches() {
			if fp.IsBinary() {
				continue
			}
			for _, chunk := range fp.Chunks() {
				switch chunk.Type() {
				case fdiff.Add:
					added += countLines(chunk.Content())
				case fdiff.Delete:
					deleted += countLines(chunk.Content())
				}
			}
		}

		stats = append(stats, FileStat{
			RawPath: FormatRenamePath(change.From.Name, change.To.Name),
			Added:   added,
			Deleted: deleted,
		})
	}
	return stats, nil
}

// CommitDiffs returns structural diff metadata for a commit against its
// first parent (or the empty tree), with rename detection enabled.
func (h *Handle) CommitDiffs(ctx context.Context, c *object.Commit) ([]DiffMeta, error) {
	changes, err := h.commitChanges(ctx, c)
	if err != nil {
		return nil, err
	}

	metas := make([]DiffMeta, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("failed to classify change %s: %w", changeName(change), err)
		}

		fromName, toName := change.From.Name, change.To.Name
		meta := DiffMeta{
			New:     action == merkletrie.Insert,
			Deleted: action == merkletrie.Delete,
			Renamed: fromName != "" && toName != "" && fromName != toName,
		}

		// a_path/b_path mirror the diff header: equal unless renamed.
		meta.APath = fromName
		if meta.APath == "" {
			meta.APath = toName
		}
		meta.BPath = toName
		if meta.BPath == "" {
			meta.BPath = fromName
		}

		meta.PreSize, meta.HasPreBlob = blobSize(change.From)
		meta.PostSize, meta.HasPostBlob = blobSize(change.To)

		metas = append(metas, meta)
	}
	return metas, nil
}

// commitChanges diffs a commit against its first parent. Root commits are
// diffed against the empty tree rather than skipped.
func (h *Handle) commitChanges(ctx context.Context, c *object.Commit) (object.Changes, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree of %s: %w", c.Hash, err)
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read parent of %s: %w", c.Hash, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("failed to read parent tree of %s: %w", c.Hash, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees of %s: %w", c.Hash, err)
	}
	return changes, nil
}

// blobSize reads the byte size of a change entry's blob. Entries without a
// readable blob (absent side, submodules) report false.
func blobSize(entry object.ChangeEntry) (int64, bool) {
	if entry.Name == "" {
		return 0, false
	}
	f, err := entry.Tree.TreeEntryFile(&entry.TreeEntry)
	if err != nil {
		return 0, false
	}
	return f.Size, true
}

func changeName(change *object.Change) string {
	if change.From.Name != "" {
		return change.From.Name
	}
	return change.To.Name
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
