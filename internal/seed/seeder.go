// Package seed reconciles the emotion catalog, remote and local, against the
// fixed reference table.
package seed

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

type Seeder struct {
	catalog store.EmotionCatalog
	remote  remote.Store
	logger  internal.Logger
}

func New(catalog store.EmotionCatalog, rs remote.Store, logger internal.Logger) *Seeder {
	return &Seeder{catalog: catalog, remote: rs, logger: logger}
}

// VerifyAndInitEmotions makes sure the remote catalog contains every expected
// emotion and returns the full catalog. Missing entries are written; existing
// entries are never touched (non-destructive merge). With nothing missing it
// performs zero writes.
func (s *Seeder) VerifyAndInitEmotions(ctx context.Context) ([]internal.Emotion, error) {
	expected := referenceByKey()

	existing, err := s.remote.ReadAll(ctx, remote.CollectionEmotions)
	if err != nil {
		s.logger.Errorf("seed: failed to read remote catalog: %v", err)
		return nil, err
	}

	var missing []string
	for key := range expected {
		if _, ok := existing[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) == 0 {
		s.logger.Debug("seed: remote catalog complete")
		return decodeCatalog(existing), nil
	}

	s.logger.Infof("seed: remote catalog missing %d emotions, adding them", len(missing))
	for _, key := range missing {
		if err := s.remote.Push(ctx, remote.CollectionEmotions, key, expected[key]); err != nil {
			s.logger.Errorf("seed: failed to write emotion %q: %v", key, err)
			return nil, err
		}
	}

	updated, err := s.remote.ReadAll(ctx, remote.CollectionEmotions)
	if err != nil {
		s.logger.Errorf("seed: failed to re-read remote catalog: %v", err)
		return nil, err
	}
	return decodeCatalog(updated), nil
}

// ForceResetEmotions deletes the entire remote catalog and rewrites the full
// reference set.
func (s *Seeder) ForceResetEmotions(ctx context.Context) ([]internal.Emotion, error) {
	s.logger.Warn("seed: forcing complete reset of the remote catalog")

	if err := s.remote.DeleteAll(ctx, remote.CollectionEmotions); err != nil {
		s.logger.Errorf("seed: failed to clear remote catalog: %v", err)
		return nil, err
	}
	for key, emotion := range referenceByKey() {
		if err := s.remote.Push(ctx, remote.CollectionEmotions, key, emotion); err != nil {
			s.logger.Errorf("seed: failed to write emotion %q: %v", key, err)
			return nil, err
		}
	}

	reset, err := s.remote.ReadAll(ctx, remote.CollectionEmotions)
	if err != nil {
		s.logger.Errorf("seed: failed to re-read remote catalog: %v", err)
		return nil, err
	}
	return decodeCatalog(reset), nil
}

// SeedLocalIfNeeded fills the local catalog from the (possibly just repaired)
// remote one. When the local row count already equals the reference table
// size the whole step is skipped without touching the network.
func (s *Seeder) SeedLocalIfNeeded(ctx context.Context) error {
	count, err := s.catalog.CountEmotions(ctx)
	if err != nil {
		return err
	}
	if count == len(referenceEmotions) {
		s.logger.Debugf("seed: local catalog already has all %d emotions, skipping", count)
		return nil
	}

	emotions, err := s.VerifyAndInitEmotions(ctx)
	if err != nil {
		return err
	}
	if err := s.catalog.InsertEmotions(ctx, emotions); err != nil {
		s.logger.Errorf("seed: failed to seed local catalog: %v", err)
		return err
	}
	s.logger.Infof("seed: local catalog seeded with %d emotions", len(emotions))
	return nil
}

// decodeCatalog turns raw remote records into emotions, dropping null or
// malformed values, sorted by name for a stable result.
func decodeCatalog(records map[string]json.RawMessage) []internal.Emotion {
	emotions := make([]internal.Emotion, 0, len(records))
	for _, raw := range records {
		var e internal.Emotion
		if err := json.Unmarshal(raw, &e); err != nil || e.Name == "" {
			continue
		}
		emotions = append(emotions, e)
	}
	sort.Slice(emotions, func(i, j int) bool { return emotions[i].Name < emotions[j].Name })
	return emotions
}
