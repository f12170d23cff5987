package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/config"
)

func NewFileRepositories(dataDir string, logger internal.Logger) (Store, error) {
	return NewFileStorage(dataDir, logger)
}

func NewPostgresRepositories(ctx context.Context, dsn string, logger internal.Logger) (Store, error) {
	return NewPostgresStorage(ctx, dsn, logger)
}

// New picks the backend named by cfg.DBType.
func New(ctx context.Context, cfg *config.Config, logger internal.Logger) (Store, error) {
	switch cfg.DBType {
	case "postgres":
		return NewPostgresRepositories(ctx, cfg.DBDSN, logger)
	case "file":
		return NewFileRepositories(filepath.Clean(cfg.DataDir), logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
