package cache

import (
	"context"
	"strings"
	"time"
)

// BytesCache is a minimal cache API storing raw bytes with TTL. Used by the
// API layer to cache rendered analysis responses.
type BytesCache interface {
	GetBytes(ctx context.Context, key string) (b []byte, ok bool, err error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key joins normalized request parameters into a cache key.
func Key(parts ...string) string {
	norm := make([]string, len(parts))
	for i, p := range parts {
		norm[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(norm, "|")
}
