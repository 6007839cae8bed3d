package fetch

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory SnapshotStore for tests and single-run CLI
// use. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Key][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[Key][]byte),
	}
}

// Get returns the stored snapshot for key. The returned slice is a copy;
// callers cannot mutate the stored bytes.
func (m *MemoryStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put stores a snapshot under key, replacing any previous value. The input
// is copied before storing.
func (m *MemoryStore) Put(ctx context.Context, key Key, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = stored
	return nil
}

// Len returns the number of stored snapshots.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns all stored keys sorted by dataset, year, then format.
func (m *MemoryStore) Keys() []Key {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]Key, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Dataset != keys[j].Dataset {
			return keys[i].Dataset < keys[j].Dataset
		}
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Format < keys[j].Format
	})
	return keys
}
