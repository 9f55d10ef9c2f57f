package auth

import (
	"context"
	"errors"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// LocalProvider accepts a single fixed token, for development.
type LocalProvider struct {
	Token  string
	User   internal.User
	logger internal.Logger
}

func NewLocalProvider(token string, user internal.User, logger internal.Logger) *LocalProvider {
	return &LocalProvider{Token: token, User: user, logger: logger}
}

func (a *LocalProvider) ValidateToken(ctx context.Context, token string) (*internal.User, error) {
	if token != a.Token {
		a.logger.Warnf("invalid token: %s", token)
		return nil, errors.New("invalid token")
	}
	user := a.User
	user.Token = token
	return &user, nil
}

var _ Provider = (*LocalProvider)(nil)
