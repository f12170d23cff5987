package auth

import (
	"context"
	"errors"

	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/storage"
)

// LocalAuthProvider accepts the static tokens stored alongside the users.
type LocalAuthProvider struct {
	users  storage.UserRepository
	logger internal.Logger
}

func (a *LocalAuthProvider) Authenticate(ctx context.Context, token string) (*internal.User, error) {
	user, err := a.users.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			a.logger.Warnf("invalid token")
			return nil, internal.ErrInvalidToken
		}
		a.logger.Errorf("failed to look up token: %v", err)
		return nil, err
	}
	return user, nil
}

func NewLocalAuthProvider(users storage.UserRepository, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{users: users, logger: logger}
}
