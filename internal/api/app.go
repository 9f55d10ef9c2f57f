package api

import (
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/reminder"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/seed"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/service"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

// App is what the handlers need from the wired application.
type App interface {
	Logger() internal.Logger
	Entries() store.EntryStore
	Emotions() store.EmotionCatalog
	Remote() remote.Store
	Syncer() service.Syncer
	Seeder() *seed.Seeder
	Reminders() *reminder.Scheduler
}
