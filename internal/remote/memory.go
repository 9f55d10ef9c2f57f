package remote

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process document store for development runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string]map[string]json.RawMessage{}}
}

func (m *MemoryStore) NewKey() string { return uuid.NewString() }

func (m *MemoryStore) Push(ctx context.Context, collection, key string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collections[collection] == nil {
		m.collections[collection] = map[string]json.RawMessage{}
	}
	m.collections[collection][key] = body
	return nil
}

func (m *MemoryStore) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.collections[collection][key]
	if !ok {
		return nil, ErrNotFound
	}
	return record, nil
}

func (m *MemoryStore) ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make(map[string]json.RawMessage, len(m.collections[collection]))
	for k, v := range m.collections[collection] {
		records[k] = v
	}
	return records, nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], key)
	return nil
}

func (m *MemoryStore) DeleteAll(ctx context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, collection)
	return nil
}

var _ Store = (*MemoryStore)(nil)
