package persistence

import (
	"context"
	"errors"
	"fmt"

	"yieldboard/internal/infrastructure/config"
)

// Store drivers accepted by Open
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for an unsupported STORE_DRIVER
var ErrUnknownDriver = errors.New("unknown store driver")

// Open builds the backend selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StoreDriver {
	case DriverFile, "":
		return NewFileBackend(cfg.DataDir)
	case DriverMemory:
		return NewMemoryBackend(), nil
	case DriverSQLite:
		return NewSQLiteBackend(ctx, cfg.SQLitePath)
	case DriverMongo:
		client, err := NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		return NewMongoBackend(client, cfg.MongoDB), nil
	case DriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("POSTGRES_DSN is required for the postgres driver")
		}
		return NewPostgresBackend(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
	}
}
