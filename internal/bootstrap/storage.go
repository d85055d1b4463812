package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/migrations"
	"github.com/yigit/intlportal/internal/config"
	"github.com/yigit/intlportal/internal/db"
	"github.com/yigit/intlportal/internal/pkg/durable"
)

// Storage is the durable backend behind the announcement list together
// with whatever must be released on shutdown.
type Storage struct {
	Backend durable.Backend
	closers []func()
}

// Close releases connections held by the backend.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// SetupStorage opens the backend selected by storage.driver. The postgres
// driver also runs the embedded migrations.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Setting up durable storage")

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return &Storage{Backend: durable.NewMemoryBackend(nil)}, nil

	case config.StorageDriverFile:
		backend, err := durable.NewFileBackend(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return &Storage{Backend: backend}, nil

	case config.StorageDriverRedis:
		backend, err := durable.NewRedisBackend(durable.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   "intlportal:",
		})
		if err != nil {
			return nil, err
		}
		closeRedis := func() {
			if err := backend.Close(); err != nil {
				lgr.Error().Err(err).Msg("Failed to close redis client")
			}
		}
		return &Storage{Backend: backend, closers: []func(){closeRedis}}, nil

	case config.StorageDriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg, lgr)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if err := migrations.NewMigrator(database.Pool, lgr).Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return &Storage{
			Backend: durable.NewPostgresBackend(database.Pool, durable.DefaultTable),
			closers: []func(){database.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
