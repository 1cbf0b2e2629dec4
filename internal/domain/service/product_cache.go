package service

import (
	"context"
	"time"
)

// ProductCache is a small read-through cache for hot catalog payloads.
// Values are opaque JSON blobs; the usecase layer owns (de)serialization.
type ProductCache interface {
	// Get returns the cached payload for key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Delete removes one or more keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
