// Package repository owns the three persisted collections — users,
// appointments, payments — and their write-through discipline: every
// successful append is synchronously mirrored to the durable store before
// the call returns. Collections are hydrated once at construction and grow
// monotonically; no update or delete operation exists.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"medicare/internal/store"
)

func loadCollection[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	data, err := st.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return records, nil
}

func persistCollection[T any](ctx context.Context, st store.Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return st.Write(ctx, key, data)
}
