package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

var validate = validator.New()

// Syncer triggers a background push of unsynced entries. Satisfied by
// syncer.Coordinator.
type Syncer interface {
	TriggerSync()
}

type EntryRequest struct {
	Timestamp   time.Time          `json:"timestamp"`
	JournalText string             `json:"journalText" validate:"max=500"`
	Emotions    []internal.Emotion `json:"emotions" validate:"max=2,dive"`
	ImageURLs   []string           `json:"imageUrls" validate:"max=3,dive,url"`
	Tags        []string           `json:"tags" validate:"max=6,dive,required"`
}

func ValidateEntryRequest(body *EntryRequest) error {
	return validate.Struct(body)
}

// CreateEntry saves a new entry locally as unsynced and triggers a background
// sync. The entry id comes from the remote store's key generator.
func CreateEntry(ctx context.Context, entries store.EntryStore, rs remote.Store, sync Syncer, user *internal.User, body *EntryRequest) (*internal.EmotionEntry, error) {
	timestamp := body.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	entry := &internal.EmotionEntry{
		EntryID:     rs.NewKey(),
		UserID:      user.ID,
		Timestamp:   timestamp,
		JournalText: body.JournalText,
		Emotions:    orEmptyEmotions(body.Emotions),
		ImageURLs:   orEmptyStrings(body.ImageURLs),
		Tags:        orEmptyStrings(body.Tags),
		IsSynced:    false,
	}
	if err := entries.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}
	sync.TriggerSync()
	return entry, nil
}

// UpdateEntry overwrites an existing entry's content, marks it unsynced, and
// triggers a background sync.
func UpdateEntry(ctx context.Context, entries store.EntryStore, sync Syncer, user *internal.User, entryID string, body *EntryRequest) (*internal.EmotionEntry, error) {
	entry, err := GetEntry(ctx, entries, user, entryID)
	if err != nil {
		return nil, err
	}
	if !body.Timestamp.IsZero() {
		entry.Timestamp = body.Timestamp
	}
	entry.JournalText = body.JournalText
	entry.Emotions = orEmptyEmotions(body.Emotions)
	entry.ImageURLs = orEmptyStrings(body.ImageURLs)
	entry.Tags = orEmptyStrings(body.Tags)
	entry.IsSynced = false
	if err := entries.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	sync.TriggerSync()
	return entry, nil
}

// DeleteEntry removes the entry from both stores immediately. The remote
// delete is best-effort: its failure is logged, not surfaced, and not
// re-queued.
func DeleteEntry(ctx context.Context, entries store.EntryStore, rs remote.Store, logger internal.Logger, user *internal.User, entryID string) error {
	if _, err := GetEntry(ctx, entries, user, entryID); err != nil {
		return err
	}
	if err := entries.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	if err := rs.Delete(ctx, remote.CollectionEntries, entryID); err != nil {
		logger.Errorf("failed to delete entry %s remotely: %v", entryID, err)
	}
	return nil
}

// GetEntry loads one entry, hiding other users' rows behind ErrNotFound.
func GetEntry(ctx context.Context, entries store.EntryStore, user *internal.User, entryID string) (*internal.EmotionEntry, error) {
	entry, err := entries.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != user.ID {
		return nil, store.ErrNotFound
	}
	return entry, nil
}

// LatestEntry returns the user's most recent entry, or ErrNotFound.
func LatestEntry(ctx context.Context, entries store.EntryStore, user *internal.User) (*internal.EmotionEntry, error) {
	all, err := entries.ListEntriesForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, store.ErrNotFound
	}
	return &all[len(all)-1], nil
}

func orEmptyStrings(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orEmptyEmotions(list []internal.Emotion) []internal.Emotion {
	if list == nil {
		return []internal.Emotion{}
	}
	return list
}
