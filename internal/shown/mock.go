package shown

import (
	"context"
	"sync"
)

// MockStore is a test double for the shown-progress store. Safe for
// concurrent use, since the controller issues writes from goroutines.
type MockStore struct {
	mu      sync.Mutex
	records []Record

	loadErr error
	setErr  error

	setCalls [][]Record
	ch       chan []Record
}

// NewMockStore creates a new mock store for testing.
func NewMockStore(records ...Record) *MockStore {
	return &MockStore{
		records: records,
		ch:      make(chan []Record, observeBufferSize),
	}
}

func (m *MockStore) Load(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cloneRecords(m.records), nil
}

func (m *MockStore) Get() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecords(m.records)
}

func (m *MockStore) Set(records ...Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls = append(m.setCalls, cloneRecords(records))
	if m.setErr != nil {
		return m.setErr
	}
	for _, r := range records {
		m.records = upsertRecord(m.records, r)
	}
	return nil
}

func (m *MockStore) Observe() <-chan []Record { return m.ch }

func (m *MockStore) Actualize(keepIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}
	kept := m.records[:0]
	for _, r := range m.records {
		if _, ok := keep[r.StoriesID]; ok {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func (m *MockStore) DeleteAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

func (m *MockStore) Close() error { return nil }

// Test helpers

func (m *MockStore) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *MockStore) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

func (m *MockStore) SetCalls() [][]Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]Record, len(m.setCalls))
	for i, call := range m.setCalls {
		out[i] = cloneRecords(call)
	}
	return out
}

// Verify MockStore implements Store at compile time.
var _ Store = (*MockStore)(nil)
