package store

import "context"

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Read returns a copy of the stored blob, or (nil, nil) if absent.
func (s *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of value under key.
func (s *MemoryStore) Write(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[key] = cp
	return nil
}

var _ Store = (*MemoryStore)(nil)
