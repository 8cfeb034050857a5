package storage

import (
	"context"
	"errors"
)

// Store is the persistence surface the engine writes through: a durable
// key-value store of opaque JSON blobs. There is no transactionality
// across keys.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("key not found")

// Well-known blob keys. The engine itself only touches KeyCart; the
// remaining keys are reserved for the outer application.
const (
	KeyCart     = "toolkit_cart"
	KeySession  = "toolkit_session"
	KeyUsers    = "toolkit_users"
	KeyDarkMode = "toolkit_dark_mode"
)
