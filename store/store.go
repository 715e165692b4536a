// Package store persists named JSON blobs in a key-value backend.
//
// Backends return errors; callers that only need best-effort persistence
// go through Save and Load, which never fail.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a KV when the key has never been set.
var ErrNotFound = errors.New("not found")

// KV is a byte-oriented key-value backend. Implementations are safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keys used by the application.
const (
	KeyItinerary   = "nile.itinerary"
	KeyPosts       = "nile.posts"
	KeyProfile     = "nile.profile"
	KeyMapCity     = "nile.mapCity"
	KeyWelcomeSeen = "nile.welcomeSeen"
	KeyOrders      = "nile.orders"
	KeyBookings    = "nile.bookings"
)

// CartKey is the per-session cart key.
func CartKey(sessionID string) string {
	return "nile.cart." + sessionID
}
