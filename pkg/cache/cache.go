// Package cache provides input-hash keyed caching for ganttline.
//
// Layouts and rendered artifacts are pure functions of a schedule and a few
// options, so they can be stored under a key derived from a hash of those
// inputs. Any change to the schedule changes the hash and therefore the key;
// stale entries are never returned, only left to expire.
//
// Backends:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance
//
// Keys are built by a [Keyer]. [ScopedKeyer] prefixes every key so several
// projects can share one backend.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL is how long computed layouts and artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (false, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// GetJSON decodes the value for key into v. An entry that fails to decode
// is reported as a miss.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON stores v encoded as JSON.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
