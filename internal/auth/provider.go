package auth

import (
	"context"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// Provider resolves a bearer token to a user.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*internal.User, error)
}
