// Package session persists the client's credential between runs: one bearer
// token and one serialized user profile, stored and removed together.
package session

import "context"

// Repository is a small key-value store backing the session manager.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Clear(ctx context.Context) error
}

// Well-known keys used by the session manager.
const (
	KeyToken = "token"
	KeyUser  = "user"
)
