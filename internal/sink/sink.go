// Package sink persists extracted record sets.
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/telemetrics/gitingest/internal/extract"
)

// Sink durably persists one record set per call, preserving insertion order.
type Sink interface {
	Write(kind extract.RecordKind, partitionKey string, records []any) error
}

// JSONL writes record sets as line-delimited JSON files, one file per kind
// per partition, named {customer}__{source}__{partition}__{kind}.jsonl.
type JSONL struct {
	Dir        string
	CustomerID string
	SourceID   string
}

// Write encodes one record per line in input order.
func (s *JSONL) Write(kind extract.RecordKind, partitionKey string, records []any) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("%s__%s__%s__%s.jsonl", s.CustomerID, s.SourceID, partitionKey, kind)
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode %s record: %w", kind, err)
		}
	}
	return f.Close()
}

// Compile-time interface conformance check.
var _ Sink = (*JSONL)(nil)
