package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// PostgresStationStore implements the store.StationNameResolver interface
// using a PostgreSQL database as the storage backend.
type PostgresStationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStationStore creates a new PostgreSQL implementation of the
// StationNameResolver interface.
// If logger is nil, a default logger will be used.
func NewPostgresStationStore(db store.DBTX, logger *slog.Logger) *PostgresStationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStationStore{
		db:     db,
		logger: logger.With(slog.String("component", "station_store")),
	}
}

// Ensure PostgresStationStore implements store.StationNameResolver interface
var _ store.StationNameResolver = (*PostgresStationStore)(nil)

// NameOf implements store.StationNameResolver.NameOf
// Returns store.ErrStationNotFound if the id references no station.
func (s *PostgresStationStore) NameOf(ctx context.Context, id int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT name
		FROM stations
		WHERE id = $1
	`

	var name string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("station not found", slog.Int64("station_id", id))
			return "", store.ErrStationNotFound
		}
		log.Error("failed to get station name",
			slog.String("error", err.Error()),
			slog.Int64("station_id", id))
		return "", err
	}

	return name, nil
}
