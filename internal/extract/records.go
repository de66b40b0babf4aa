// Package extract assembles identifier-stable repository, commit and diff
// records from a git repository's history.
package extract

// RecordKind tags the entity a record describes. The values double as the
// sink's record-set names.
type RecordKind string

const (
	KindRepo   RecordKind = "git_repos"
	KindCommit RecordKind = "git_commits"
	KindDiff   RecordKind = "git_commit_diffs"
)

// Record is one tagged extractor output. Exactly one of Repo and Commit is
// set, matching Kind. Diffs travel embedded in their commit until the
// pipeline flattens them.
type Record struct {
	Kind   RecordKind
	Repo   *Repository
	Commit *Commit
}

// Repository is the single per-run repository record. Immutable once emitted.
type Repository struct {
	ID       string `json:"tm_id"`
	SensorID string `json:"sensor_id"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
}

// Commit is one traversed commit. Immutable once emitted.
type Commit struct {
	ID             string `json:"tm_id"`
	SensorID       string `json:"sensor_id"`
	RepoID         string `json:"repo_id"`
	Hexsha         string `json:"hexsha"`
	AuthorName     string `json:"author.name"`
	AuthorEmail    string `json:"author.email"`
	CommitterName  string `json:"committer.name"`
	CommitterEmail string `json:"committer.email"`
	AuthoredDate   int64  `json:"authored_date"`
	CommittedDate  int64  `json:"committed_date"`
	Message        string `json:"message"`
	Summary        string `json:"summary"`

	// Parents and Diffs hold identifiers of related records, ordered.
	Parents []string `json:"parents"`
	Diffs   []Diff   `json:"diffs,omitempty"`
}

// ChangeType is the single-character change classification of a diff.
type ChangeType string

const (
	ChangeAdd    ChangeType = "A"
	ChangeModify ChangeType = "M"
	ChangeDelete ChangeType = "D"
	ChangeRename ChangeType = "R"
)

// Diff is one file-level change within a commit, reconciling the commit's
// aggregate line stats with its structural diff metadata.
type Diff struct {
	ID        string     `json:"tm_id"`
	SensorID  string     `json:"sensor_id"`
	RepoID    string     `json:"repo_id"`
	CommitID  string     `json:"commit_id"`
	APath     string     `json:"a_path"`
	BPath     string     `json:"b_path"`
	AObjectID string     `json:"a_object_id"`
	BObjectID string     `json:"b_object_id"`
	SizeDelta int64      `json:"size_delta"`
	Type      ChangeType `json:"type"`

	// Raw line counts carried over from the commit's aggregate stats.
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
	Lines      int `json:"lines"`
}
