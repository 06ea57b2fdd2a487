// Package store provides the durable key-value medium backing the portal's
// persisted collections. Each collection lives under one fixed key whose
// value is the full serialized collection, re-read in full on every load.
package store

import "context"

// Fixed collection keys, one per persisted collection.
const (
	KeyUsers        = "mc_users_v1"
	KeyAppointments = "mc_appts_v1"
	KeyPayments     = "mc_payments_v1"
)

// Store reads and writes named string-keyed blobs. Read returns (nil, nil)
// when the key is absent; callers treat absence as an empty collection.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}
