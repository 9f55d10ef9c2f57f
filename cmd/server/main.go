package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/api"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/auth"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/config"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/reminder"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/seed"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/service"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/syncer"
)

// app owns every constructed component. Nothing in the tree is a package
// level singleton; handlers reach everything through api.App.
type app struct {
	logger    internal.Logger
	local     *store.SQLiteStore
	remote    remote.Store
	sync      *syncer.Coordinator
	seeder    *seed.Seeder
	reminders *reminder.Scheduler
}

func (a *app) Logger() internal.Logger        { return a.logger }
func (a *app) Entries() store.EntryStore      { return a.local }
func (a *app) Emotions() store.EmotionCatalog { return a.local }
func (a *app) Remote() remote.Store           { return a.remote }
func (a *app) Syncer() service.Syncer         { return a.sync }
func (a *app) Seeder() *seed.Seeder           { return a.seeder }
func (a *app) Reminders() *reminder.Scheduler { return a.reminders }

var _ api.App = (*app)(nil)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	local, err := store.NewSQLiteStore(cfg.SQLitePath, logger)
	if err != nil {
		logger.Fatalf("failed to open local store: %v", err)
	}
	defer local.Close()

	remoteStore, err := remote.NewStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init remote store: %v", err)
	}
	deviceAuth := remote.NewAuth(cfg, logger)

	sync := syncer.New(local, remoteStore, logger)
	seeder := seed.New(local, remoteStore, logger)

	wakeups := reminder.NewTimerWakeups(logger)
	notifier := reminder.NewLogNotifier(logger)
	reminders := reminder.NewScheduler(wakeups, notifier, remoteStore, deviceAuth, logger)
	wakeups.SetHandler(reminders.HandleWakeup)

	a := &app{
		logger:    logger,
		local:     local,
		remote:    remoteStore,
		sync:      sync,
		seeder:    seeder,
		reminders: reminders,
	}

	// Startup reconciliation: repair the catalog, drain pending entries, and
	// re-arm reminders lost to the restart.
	go func() {
		if err := seeder.SeedLocalIfNeeded(ctx); err != nil {
			logger.Errorf("catalog seeding failed: %v", err)
		}
		sync.TriggerSync()
		if err := reminders.RescheduleOnBoot(ctx); err != nil {
			logger.Errorf("reminder boot recovery failed: %v", err)
		}
	}()

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalProvider(cfg.AuthToken, internal.User{ID: cfg.DevUserID, Name: cfg.DevUserName}, logger)
	} else {
		provider = auth.NewRemoteProvider(cfg.AuthServiceURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(auth.Middleware(provider))

	r.POST("/entries", api.PostEntry(a))
	r.GET("/entries", api.GetEntries(a))
	r.GET("/entries/latest", api.GetLatestEntry(a))
	r.GET("/entries/:id", api.GetEntry(a))
	r.PUT("/entries/:id", api.PutEntry(a))
	r.DELETE("/entries/:id", api.DeleteEntry(a))
	r.GET("/analytics", api.GetAnalytics(a))
	r.GET("/emotions", api.GetEmotions(a))
	r.GET("/emotions/:name", api.GetEmotionByName(a))
	r.POST("/emotions/reset", api.PostEmotionReset(a))
	r.PUT("/reminders", api.PutReminderPreference(a))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		logger.Infof("server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
}
