package logger

import (
	"strings"
	"sync"
)

// recordBuffer retains the most recent records in insertion order. A single
// lock guards append, eviction and snapshot so the capacity invariant holds
// even with concurrent writers.
type recordBuffer struct {
	mu      sync.RWMutex
	records []Record
	limit   int
}

func newRecordBuffer(limit int) *recordBuffer {
	if limit <= 0 {
		limit = DefaultMaxStackSize
	}
	return &recordBuffer{limit: limit, records: make([]Record, 0, limit)}
}

// append stores the record. When the buffer would exceed its limit, exactly
// the single oldest record is evicted.
func (b *recordBuffer) append(r Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = append(b.records, r)
	if len(b.records) > b.limit {
		b.records = b.records[1:]
	}
}

// snapshot returns a copy of the retained records, oldest first. Callers may
// mutate the returned slice freely.
func (b *recordBuffer) snapshot() []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]Record, len(b.records))
	copy(records, b.records)
	return records
}

// export joins every rendered line with a newline, oldest first.
func (b *recordBuffer) export() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([]string, len(b.records))
	for i, r := range b.records {
		lines[i] = r.Line
	}
	return strings.Join(lines, "\n")
}

// count returns the number of retained records.
func (b *recordBuffer) count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}
