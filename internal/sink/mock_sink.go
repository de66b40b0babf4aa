package sink

import "github.com/telemetrics/gitingest/internal/extract"

// WriteCall records one Sink.Write invocation.
type WriteCall struct {
	Kind         extract.RecordKind
	PartitionKey string
	Records      []any
}

// Memory is a test double that records writes in order.
type Memory struct {
	Calls []WriteCall
	Err   error
}

// Write appends the call, or returns the configured error.
func (m *Memory) Write(kind extract.RecordKind, partitionKey string, records []any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, WriteCall{Kind: kind, PartitionKey: partitionKey, Records: records})
	return nil
}

// Compile-time interface conformance check.
var _ Sink = (*Memory)(nil)
