package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Save encodes value as JSON and writes it under key. Failures are logged
// and reported through the return value only.
func Save(ctx context.Context, kv KV, key string, value any) bool {
	if kv == nil {
		return false
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: encoding %s: %v", key, err)
		return false
	}
	if err := kv.Set(ctx, key, data); err != nil {
		log.Printf("store: saving %s: %v", key, err)
		return false
	}
	return true
}

// Load decodes the value stored under key. fallback is returned unchanged
// when the key is missing or empty, the backend fails, or the stored JSON
// does not decode into T.
func Load[T any](ctx context.Context, kv KV, key string, fallback T) T {
	if kv == nil {
		return fallback
	}
	data, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: loading %s: %v", key, err)
		}
		return fallback
	}
	if len(data) == 0 {
		return fallback
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("store: decoding %s: %v", key, err)
		return fallback
	}
	return v
}

// LoadStrict is Load for read-modify-write callers. Only a missing or empty
// key yields empty; backend and decode failures are returned so the caller
// does not overwrite data it could not read.
func LoadStrict[T any](ctx context.Context, kv KV, key string, empty T) (T, error) {
	if kv == nil {
		return empty, nil
	}
	data, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("loading %s: %w", key, err)
	}
	if len(data) == 0 {
		return empty, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return empty, fmt.Errorf("decoding %s: %w", key, err)
	}
	return v, nil
}

// Remove deletes key, ignoring failures.
func Remove(ctx context.Context, kv KV, key string) bool {
	if kv == nil {
		return false
	}
	if err := kv.Delete(ctx, key); err != nil {
		log.Printf("store: deleting %s: %v", key, err)
		return false
	}
	return true
}
