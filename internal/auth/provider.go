package auth

import (
	"context"
	"fmt"

	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/config"
	"github.com/yourname/healthtracker/internal/storage"
)

// Provider resolves a bearer token to the user it belongs to. Any failure
// to do so is reported as internal.ErrInvalidToken or wraps it.
type Provider interface {
	Authenticate(ctx context.Context, token string) (*internal.User, error)
}

// NewProvider picks the provider named by cfg.AuthMode.
func NewProvider(cfg *config.Config, users storage.UserRepository, logger internal.Logger) (Provider, error) {
	switch cfg.AuthMode {
	case "local":
		return NewLocalAuthProvider(users, logger), nil
	case "remote":
		return NewRemoteAuthProvider(cfg.AuthServiceURL, logger), nil
	case "jwt":
		return NewJWTAuthProvider(cfg.JWTSecret, DefaultTokenTTL, logger), nil
	default:
		return nil, fmt.Errorf("auth: unknown mode %q", cfg.AuthMode)
	}
}
