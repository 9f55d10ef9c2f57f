package remote

import (
	"context"
	"errors"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/config"
)

// NewStore builds the configured remote store backend.
func NewStore(ctx context.Context, cfg *config.Config, logger internal.Logger) (Store, error) {
	switch cfg.RemoteBackend {
	case "http":
		return NewHTTPStore(cfg.RemoteBaseURL, logger), nil
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresDSN, logger)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, errors.New("unknown remote backend: " + cfg.RemoteBackend)
	}
}

// NewAuth builds the device auth client. Development pins the configured
// user; everything else asks the remote auth service.
func NewAuth(cfg *config.Config, logger internal.Logger) Auth {
	if cfg.Env == "development" {
		return &StaticAuth{UserID: cfg.DevUserID}
	}
	return NewHTTPAuth(cfg.AuthServiceURL, cfg.AuthToken, logger)
}
