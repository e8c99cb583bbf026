// Package kv defines the durable key-value collaborator used for auth
// tokens and the persisted state document, with memory, file, Redis and
// Postgres backends.
package kv

import "context"

// Store is the narrow contract the rest of the app depends on. Get returns
// (nil, nil) for an absent key; absence is not an error condition.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
