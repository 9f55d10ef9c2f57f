package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

const schema = `
CREATE TABLE IF NOT EXISTS emotions (
	name        TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	definition  TEXT NOT NULL,
	energyLevel INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS emotion_entries (
	entryId     TEXT PRIMARY KEY,
	userId      TEXT NOT NULL,
	timestamp   INTEGER NOT NULL,
	journalText TEXT NOT NULL DEFAULT '',
	imageUrls   TEXT,
	tags        TEXT,
	emotions    TEXT,
	isSynced    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_entries_user_time ON emotion_entries(userId, timestamp);
CREATE INDEX IF NOT EXISTS idx_entries_unsynced ON emotion_entries(isSynced);
`

// SQLiteStore backs both local caches with a single sqlite database.
// Timestamps are stored as unix milliseconds; list fields are JSON-encoded
// text columns (a NULL or literal "null" column decodes to an empty list).
type SQLiteStore struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStore(path string, logger internal.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Errorf("failed to create data directory: %v", err)
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite database: %v", err)
		return nil, err
	}
	// A single connection keeps all operations on one serialized queue.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		logger.Errorf("failed to apply sqlite schema: %v", err)
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// --- EntryStore ---

func (s *SQLiteStore) InsertEntry(ctx context.Context, entry *internal.EmotionEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO emotion_entries (entryId, userId, timestamp, journalText, imageUrls, tags, emotions, isSynced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, entry.UserID, entry.Timestamp.UnixMilli(), entry.JournalText,
		encodeStringList(entry.ImageURLs), encodeStringList(entry.Tags),
		encodeEmotionList(entry.Emotions), boolToInt(entry.IsSynced))
	if err != nil {
		s.logger.Errorf("failed to insert entry %s: %v", entry.EntryID, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) UpdateEntry(ctx context.Context, entry *internal.EmotionEntry) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE emotion_entries
		 SET userId = ?, timestamp = ?, journalText = ?, imageUrls = ?, tags = ?, emotions = ?, isSynced = ?
		 WHERE entryId = ?`,
		entry.UserID, entry.Timestamp.UnixMilli(), entry.JournalText,
		encodeStringList(entry.ImageURLs), encodeStringList(entry.Tags),
		encodeEmotionList(entry.Emotions), boolToInt(entry.IsSynced), entry.EntryID)
	if err != nil {
		s.logger.Errorf("failed to update entry %s: %v", entry.EntryID, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) DeleteEntry(ctx context.Context, entryID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM emotion_entries WHERE entryId = ?`, entryID)
	if err != nil {
		s.logger.Errorf("failed to delete entry %s: %v", entryID, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) GetEntryByID(ctx context.Context, entryID string) (*internal.EmotionEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT entryId, userId, timestamp, journalText, imageUrls, tags, emotions, isSynced
		 FROM emotion_entries WHERE entryId = ? LIMIT 1`, entryID)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Errorf("failed to load entry %s: %v", entryID, err)
		return nil, err
	}
	return entry, nil
}

func (s *SQLiteStore) ListEntriesForUser(ctx context.Context, userID string) ([]internal.EmotionEntry, error) {
	return s.queryEntries(ctx,
		`SELECT entryId, userId, timestamp, journalText, imageUrls, tags, emotions, isSynced
		 FROM emotion_entries WHERE userId = ? ORDER BY timestamp ASC`, userID)
}

func (s *SQLiteStore) ListEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]internal.EmotionEntry, error) {
	return s.queryEntries(ctx,
		`SELECT entryId, userId, timestamp, journalText, imageUrls, tags, emotions, isSynced
		 FROM emotion_entries WHERE userId = ? AND timestamp BETWEEN ? AND ? ORDER BY timestamp ASC`,
		userID, from.UnixMilli(), to.UnixMilli())
}

func (s *SQLiteStore) ListUnsyncedEntries(ctx context.Context) ([]internal.EmotionEntry, error) {
	return s.queryEntries(ctx,
		`SELECT entryId, userId, timestamp, journalText, imageUrls, tags, emotions, isSynced
		 FROM emotion_entries WHERE isSynced = 0`)
}

func (s *SQLiteStore) ClearEntriesForUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM emotion_entries WHERE userId = ?`, userID)
	if err != nil {
		s.logger.Errorf("failed to clear entries for user %s: %v", userID, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args ...any) ([]internal.EmotionEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Errorf("failed to query entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []internal.EmotionEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			s.logger.Errorf("failed to scan entry: %v", err)
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*internal.EmotionEntry, error) {
	var (
		entry     internal.EmotionEntry
		millis    int64
		imageURLs sql.NullString
		tags      sql.NullString
		emotions  sql.NullString
		synced    int
	)
	if err := row.Scan(&entry.EntryID, &entry.UserID, &millis, &entry.JournalText,
		&imageURLs, &tags, &emotions, &synced); err != nil {
		return nil, err
	}
	entry.Timestamp = time.UnixMilli(millis)
	entry.ImageURLs = decodeStringList(imageURLs.String)
	entry.Tags = decodeStringList(tags.String)
	entry.Emotions = decodeEmotionList(emotions.String)
	entry.IsSynced = synced != 0
	return &entry, nil
}

// --- EmotionCatalog ---

func (s *SQLiteStore) InsertEmotions(ctx context.Context, emotions []internal.Emotion) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, e := range emotions {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO emotions (name, category, definition, energyLevel) VALUES (?, ?, ?, ?)`,
			e.Name, string(e.Category), e.Definition, e.EnergyLevel); err != nil {
			s.logger.Errorf("failed to insert emotion %q: %v", e.Name, err)
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListEmotions(ctx context.Context) ([]internal.Emotion, error) {
	return s.queryEmotions(ctx, `SELECT name, category, definition, energyLevel FROM emotions`)
}

func (s *SQLiteStore) ListEmotionsByCategory(ctx context.Context, category internal.Category) ([]internal.Emotion, error) {
	return s.queryEmotions(ctx,
		`SELECT name, category, definition, energyLevel FROM emotions
		 WHERE category = ? ORDER BY energyLevel DESC`, string(category))
}

func (s *SQLiteStore) GetEmotionByName(ctx context.Context, name string) (*internal.Emotion, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, category, definition, energyLevel FROM emotions WHERE name = ? LIMIT 1`, name)
	var e internal.Emotion
	err := row.Scan(&e.Name, &e.Category, &e.Definition, &e.EnergyLevel)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Errorf("failed to load emotion %q: %v", name, err)
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) CountEmotions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM emotions`).Scan(&count); err != nil {
		s.logger.Errorf("failed to count emotions: %v", err)
		return 0, err
	}
	return count, nil
}

func (s *SQLiteStore) queryEmotions(ctx context.Context, query string, args ...any) ([]internal.Emotion, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Errorf("failed to query emotions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var emotions []internal.Emotion
	for rows.Next() {
		var e internal.Emotion
		if err := rows.Scan(&e.Name, &e.Category, &e.Definition, &e.EnergyLevel); err != nil {
			s.logger.Errorf("failed to scan emotion: %v", err)
			return nil, err
		}
		emotions = append(emotions, e)
	}
	return emotions, rows.Err()
}

// --- column codecs ---

func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func decodeStringList(raw string) []string {
	if raw == "" || raw == "null" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func encodeEmotionList(list []internal.Emotion) string {
	if list == nil {
		list = []internal.Emotion{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func decodeEmotionList(raw string) []internal.Emotion {
	if raw == "" || raw == "null" {
		return []internal.Emotion{}
	}
	var list []internal.Emotion
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []internal.Emotion{}
	}
	return list
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// --- Compile-time assertions ---
var _ EntryStore = (*SQLiteStore)(nil)
var _ EmotionCatalog = (*SQLiteStore)(nil)
