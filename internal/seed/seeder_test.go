package seed

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

// countingRemote counts writes so tests can assert on the zero-write paths.
type countingRemote struct {
	*remote.MemoryStore
	mu     sync.Mutex
	pushes int
}

func newCountingRemote() *countingRemote {
	return &countingRemote{MemoryStore: remote.NewMemoryStore()}
}

func (c *countingRemote) Push(ctx context.Context, collection, key string, record any) error {
	c.mu.Lock()
	c.pushes++
	c.mu.Unlock()
	return c.MemoryStore.Push(ctx, collection, key, record)
}

func (c *countingRemote) pushCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pushes
}

func newTestCatalog(t *testing.T) store.EmotionCatalog {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "seed.db"), internal.NopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReferenceTableShape(t *testing.T) {
	emotions := ReferenceEmotions()
	assert.Len(t, emotions, 100)

	perCategory := map[internal.Category]int{}
	keys := map[string]bool{}
	for _, e := range emotions {
		perCategory[e.Category]++
		assert.False(t, keys[Key(e.Name)], "duplicate key %q", Key(e.Name))
		keys[Key(e.Name)] = true
		assert.NotEmpty(t, e.Definition, "emotion %q has no definition", e.Name)
		assert.GreaterOrEqual(t, e.EnergyLevel, 1, "emotion %q energy out of range", e.Name)
		assert.LessOrEqual(t, e.EnergyLevel, 10, "emotion %q energy out of range", e.Name)
	}
	for _, category := range internal.Categories() {
		assert.Equal(t, 25, perCategory[category], "category %s", category)
	}
}

func TestVerifyAndInitFillsEmptyCatalog(t *testing.T) {
	rs := newCountingRemote()
	ctx := context.Background()

	emotions, err := New(newTestCatalog(t), rs, internal.NopLogger()).VerifyAndInitEmotions(ctx)
	require.NoError(t, err)
	assert.Len(t, emotions, 100)
	assert.Equal(t, 100, rs.pushCount())

	records, err := rs.ReadAll(ctx, remote.CollectionEmotions)
	require.NoError(t, err)
	assert.Len(t, records, 100)
}

func TestVerifyAndInitIsNonDestructive(t *testing.T) {
	rs := newCountingRemote()
	ctx := context.Background()

	// A pre-existing record under a reference key must survive untouched.
	custom := internal.Emotion{Name: "Joyful", Category: internal.CategoryHighEnergyPleasant, Definition: "customized by an admin", EnergyLevel: 1}
	require.NoError(t, rs.Push(ctx, remote.CollectionEmotions, Key(custom.Name), custom))

	seeder := New(newTestCatalog(t), rs, internal.NopLogger())
	emotions, err := seeder.VerifyAndInitEmotions(ctx)
	require.NoError(t, err)
	assert.Len(t, emotions, 100)

	for _, e := range emotions {
		if e.Name == "Joyful" {
			assert.Equal(t, "customized by an admin", e.Definition)
		}
	}
}

func TestVerifyAndInitCompleteCatalogWritesNothing(t *testing.T) {
	rs := newCountingRemote()
	ctx := context.Background()

	seeder := New(newTestCatalog(t), rs, internal.NopLogger())
	_, err := seeder.VerifyAndInitEmotions(ctx)
	require.NoError(t, err)
	writesAfterFirst := rs.pushCount()

	_, err = seeder.VerifyAndInitEmotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, writesAfterFirst, rs.pushCount())
}

func TestForceResetDiscardsStrayRecords(t *testing.T) {
	rs := newCountingRemote()
	ctx := context.Background()

	stray := internal.Emotion{Name: "Stray", Category: internal.CategoryLowEnergyUnpleasant, Definition: "should not survive", EnergyLevel: 5}
	require.NoError(t, rs.Push(ctx, remote.CollectionEmotions, Key(stray.Name), stray))

	emotions, err := New(newTestCatalog(t), rs, internal.NopLogger()).ForceResetEmotions(ctx)
	require.NoError(t, err)
	assert.Len(t, emotions, 100)
	for _, e := range emotions {
		assert.NotEqual(t, "Stray", e.Name)
	}
}

func TestSeedLocalIfNeeded(t *testing.T) {
	catalog := newTestCatalog(t)
	rs := newCountingRemote()
	ctx := context.Background()

	seeder := New(catalog, rs, internal.NopLogger())
	require.NoError(t, seeder.SeedLocalIfNeeded(ctx))

	count, err := catalog.CountEmotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}

func TestSeedLocalShortCircuitsWhenFull(t *testing.T) {
	catalog := newTestCatalog(t)
	rs := newCountingRemote()
	ctx := context.Background()

	require.NoError(t, catalog.InsertEmotions(ctx, ReferenceEmotions()))

	// A full local catalog skips the remote entirely.
	require.NoError(t, New(catalog, rs, internal.NopLogger()).SeedLocalIfNeeded(ctx))
	assert.Equal(t, 0, rs.pushCount())
}

func TestDecodeCatalogDropsMalformedRecords(t *testing.T) {
	rs := newCountingRemote()
	ctx := context.Background()

	require.NoError(t, rs.Push(ctx, remote.CollectionEmotions, "broken", "not an emotion"))
	require.NoError(t, rs.Push(ctx, remote.CollectionEmotions, Key("Calm"),
		internal.Emotion{Name: "Calm", Category: internal.CategoryLowEnergyPleasant, Definition: "at ease", EnergyLevel: 3}))

	records, err := rs.ReadAll(ctx, remote.CollectionEmotions)
	require.NoError(t, err)

	emotions := decodeCatalog(records)
	require.Len(t, emotions, 1)
	assert.Equal(t, "Calm", emotions[0].Name)
}
