package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
)

// Storages bundles the repositories of the service together with the
// underlying connection, which is nil for the in-memory backend.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages selects a backend from the DSN scheme, connects, applies
// migrations and builds the repositories:
//   - postgres:// or postgresql:// → PostgreSQL
//   - sqlite:// or file: → SQLite
//   - memory:// → process memory
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	if isMemoryDSN(dsn) {
		log.Info().Str("func", "NewStorages").Msg("using in-memory account storage")
		return &Storages{AccountRepository: NewMemoryAccountRepository(log)}, nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(dsn))
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func schemeOf(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return dsn
}
