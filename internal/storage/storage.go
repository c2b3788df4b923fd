// Package storage opens the backend named by the store URI and hands out
// its account store and document reader.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/config"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/storage/memory"
	"github.com/dmitrijs2005/dietdash/internal/storage/mongo"
	"github.com/dmitrijs2005/dietdash/internal/storage/postgres"
)

// ErrUnsupportedScheme is returned for store URIs no backend understands.
var ErrUnsupportedScheme = errors.New("unsupported store scheme")

// Backend is an opened store. Close releases its connections.
type Backend struct {
	Accounts  accounts.Repository
	Documents dashboard.Reader
	Kind      string

	close func(context.Context) error
}

func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

type store interface {
	accounts.Repository
	dashboard.Reader
	Close(context.Context) error
}

func newBackend(kind string, s store) *Backend {
	return &Backend{Accounts: s, Documents: s, Kind: kind, close: s.Close}
}

// Open connects to cfg.StoreURI and prepares the schema: the unique email
// index for MongoDB, goose migrations for PostgreSQL. Connecting is bounded
// by cfg.StoreTimeout.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Backend, error) {
	u, err := url.Parse(cfg.StoreURI)
	if err != nil {
		return nil, fmt.Errorf("store uri: %w", err)
	}

	if cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
	}

	switch u.Scheme {
	case "memory":
		logger.Info(ctx, "using in-memory store")
		return newBackend("memory", memory.New()), nil

	case "mongodb", "mongodb+srv":
		s, err := mongo.Connect(ctx, cfg.StoreURI, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(context.Background())
			return nil, err
		}
		logger.Info(ctx, "connected to mongodb", "uri", u.Redacted(), "database", cfg.DatabaseName)
		return newBackend("mongodb", s), nil

	case "postgres", "postgresql":
		s, err := postgres.Open(ctx, cfg.StoreURI)
		if err != nil {
			return nil, err
		}
		if err := s.RunMigrations(ctx); err != nil {
			_ = s.Close(context.Background())
			return nil, err
		}
		logger.Info(ctx, "connected to postgres", "uri", u.Redacted())
		return newBackend("postgres", s), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
