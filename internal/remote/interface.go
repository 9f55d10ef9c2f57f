package remote

import (
	"context"
	"encoding/json"
	"errors"
)

// Collections of the remote document store.
const (
	CollectionEntries  = "emotion_entries"
	CollectionEmotions = "emotions"
	CollectionUsers    = "users"
)

// ErrNotFound is returned by Read when the key does not exist.
var ErrNotFound = errors.New("remote: not found")

// Store is the remote document store, treated as an opaque key-value push
// target. Records are whatever the caller hands in, marshaled to JSON.
//
// The original backend also served filtered per-user reads for the UI; here
// the local cache is the read path, so the adapter only exposes the full-
// collection read the seeder needs plus a single-key read for user records.
type Store interface {
	// NewKey returns a fresh unique key for a record about to be pushed.
	NewKey() string
	Push(ctx context.Context, collection, key string, record any) error
	Read(ctx context.Context, collection, key string) (json.RawMessage, error)
	// ReadAll returns the collection as key -> raw record.
	ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	Delete(ctx context.Context, collection, key string) error
	// DeleteAll removes the entire collection.
	DeleteAll(ctx context.Context, collection string) error
}

// Auth identifies the device's signed-in user. Entry queries and reminder
// boot recovery are scoped by it.
type Auth interface {
	// CurrentUserID returns "" with no error when nobody is signed in.
	CurrentUserID(ctx context.Context) (string, error)
}
