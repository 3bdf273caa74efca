package core

// orderlog.go records order hand-offs.
//
// An entry is written each time a cart is handed off to the messaging app.
// The log is informational: the order itself lives in the chat, so a
// failed write is logged and never blocks the hand-off.

import (
	"context"
	"sync"
)

// DefaultOrderHistoryLimit is the default page size for Recent.
const DefaultOrderHistoryLimit = 50

// OrderLog stores order hand-off records.
type OrderLog interface {
	Record(ctx context.Context, rec OrderRecord) error
	Recent(ctx context.Context, limit int) ([]OrderRecord, error)
}

// MemoryOrderLog keeps the most recent records in a fixed-size ring.
type MemoryOrderLog struct {
	mu      sync.Mutex
	records []OrderRecord
	next    int
	full    bool
}

// NewMemoryOrderLog creates a ring holding up to capacity records.
func NewMemoryOrderLog(capacity int) *MemoryOrderLog {
	if capacity <= 0 {
		capacity = DefaultOrderHistoryLimit
	}
	return &MemoryOrderLog{records: make([]OrderRecord, capacity)}
}

// Record appends rec, overwriting the oldest entry when full.
func (m *MemoryOrderLog) Record(_ context.Context, rec OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[m.next] = rec
	m.next = (m.next + 1) % len(m.records)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (m *MemoryOrderLog) Recent(_ context.Context, limit int) ([]OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	if m.full {
		n = len(m.records)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]OrderRecord, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.records)) % len(m.records)
		out = append(out, m.records[idx])
	}
	return out, nil
}
