// Package syncer pushes locally authored, unsynced emotion entries to the
// remote document store. The flow is one-way outward: nothing is pulled or
// merged back, and there is no conflict resolution.
package syncer

import (
	"context"
	"sync"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

// Coordinator drains unsynced entries from the local cache into the remote
// store. A failed push leaves the row pending for the next trigger; there is
// no retry loop and no ordering across rows.
type Coordinator struct {
	entries store.EntryStore
	remote  remote.Store
	logger  internal.Logger
}

func New(entries store.EntryStore, rs remote.Store, logger internal.Logger) *Coordinator {
	return &Coordinator{entries: entries, remote: rs, logger: logger}
}

// TriggerSync schedules a single sync pass and returns immediately. Called
// after any local insert or update of a not-yet-synced entry.
func (c *Coordinator) TriggerSync() {
	go c.RunOnce(context.Background())
}

// RunOnce performs one sync pass: list every unsynced entry and push each to
// the remote store, marking rows synced locally as their pushes succeed.
// Rows are independent; one failure does not block the rest.
func (c *Coordinator) RunOnce(ctx context.Context) {
	unsynced, err := c.entries.ListUnsyncedEntries(ctx)
	if err != nil {
		c.logger.Errorf("sync: failed to list unsynced entries: %v", err)
		return
	}
	if len(unsynced) == 0 {
		c.logger.Debug("sync: no unsynced entries")
		return
	}

	c.logger.Infof("sync: pushing %d entries", len(unsynced))

	var wg sync.WaitGroup
	for i := range unsynced {
		entry := unsynced[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.pushEntry(ctx, entry)
		}()
	}
	wg.Wait()
}

func (c *Coordinator) pushEntry(ctx context.Context, entry internal.EmotionEntry) {
	if err := c.remote.Push(ctx, remote.CollectionEntries, entry.EntryID, entry); err != nil {
		// Leave the row pending; the next trigger picks it up.
		c.logger.Errorf("sync: failed to push entry %s: %v", entry.EntryID, err)
		return
	}
	entry.IsSynced = true
	if err := c.entries.UpdateEntry(ctx, &entry); err != nil {
		c.logger.Errorf("sync: failed to mark entry %s synced: %v", entry.EntryID, err)
		return
	}
	c.logger.Debugf("sync: entry %s synced", entry.EntryID)
}
