// Package kvstore provides the collection store the domain layer persists
// through. Collections are JSON-encoded ordered sequences kept whole under
// logical keys; every mutation reads the full collection and writes it back.
package kvstore

import (
	"context"
	"errors"
)

// Logical collection keys.
const (
	KeyClients  = "clients"
	KeyProducts = "products"
	KeyQuotes   = "quotes"
	KeySettings = "settings"
)

// ErrNotFound indicates the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the key-value collaborator the domain repositories depend on.
// Get decodes the stored JSON payload into dest and returns ErrNotFound
// when the key is absent. Set replaces the payload wholesale.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}
