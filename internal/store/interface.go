package store

import (
	"context"
	"errors"
	"time"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// ErrNotFound is returned by single-row lookups when no row matches.
var ErrNotFound = errors.New("store: not found")

// EntryStore is the local cache of emotion entries. It is the sole owner of
// its rows; the only cross-store consistency signal is the IsSynced flag.
type EntryStore interface {
	// InsertEntry aborts if an entry with the same id already exists.
	InsertEntry(ctx context.Context, entry *internal.EmotionEntry) error
	// UpdateEntry replaces the stored row. Updating a missing row is a no-op.
	UpdateEntry(ctx context.Context, entry *internal.EmotionEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
	GetEntryByID(ctx context.Context, entryID string) (*internal.EmotionEntry, error)
	// ListEntriesForUser returns the user's entries ordered by timestamp ascending.
	ListEntriesForUser(ctx context.Context, userID string) ([]internal.EmotionEntry, error)
	// ListEntriesInRange returns the user's entries with from <= timestamp <= to,
	// ordered by timestamp ascending.
	ListEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]internal.EmotionEntry, error)
	// ListUnsyncedEntries returns every entry whose remote copy is missing or stale.
	ListUnsyncedEntries(ctx context.Context) ([]internal.EmotionEntry, error)
	ClearEntriesForUser(ctx context.Context, userID string) error
}

// EmotionCatalog is the local cache of the fixed emotion reference set.
// Seeded once; read-only to the rest of the app.
type EmotionCatalog interface {
	// InsertEmotions inserts the given emotions, ignoring rows whose name
	// already exists.
	InsertEmotions(ctx context.Context, emotions []internal.Emotion) error
	ListEmotions(ctx context.Context) ([]internal.Emotion, error)
	// ListEmotionsByCategory orders by energy level descending.
	ListEmotionsByCategory(ctx context.Context, category internal.Category) ([]internal.Emotion, error)
	GetEmotionByName(ctx context.Context, name string) (*internal.Emotion, error)
	CountEmotions(ctx context.Context) (int, error)
}
