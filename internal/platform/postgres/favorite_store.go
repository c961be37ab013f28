package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// PostgresFavoriteStore implements the store.FavoriteStore interface
// using a PostgreSQL database as the storage backend.
//
// The uq_favorites_member_route unique index on (member_id,
// source_station_id, target_station_id) enforces duplicate-pair
// prevention at the storage level, closing the check-then-act race
// between concurrent creates for the same member.
type PostgresFavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFavoriteStore creates a new PostgreSQL implementation of the
// FavoriteStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFavoriteStore(db store.DBTX, logger *slog.Logger) *PostgresFavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFavoriteStore{
		db:     db,
		logger: logger.With(slog.String("component", "favorite_store")),
	}
}

// Ensure PostgresFavoriteStore implements store.FavoriteStore interface
var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

// Insert implements store.FavoriteStore.Insert
// It saves a new favorite, handling domain validation, and assigns the
// generated id. Constraint violations are translated into store sentinels:
// the unique route index into store.ErrDuplicateFavorite, station foreign
// keys into store.ErrStationNotFound, and the member foreign key into
// store.ErrMemberNotFound.
func (s *PostgresFavoriteStore) Insert(ctx context.Context, favorite *domain.Favorite) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := favorite.Validate(); err != nil {
		log.Warn("favorite validation failed during insert",
			slog.String("error", err.Error()),
			slog.Int64("member_id", favorite.MemberID))
		return err
	}

	query := `
		INSERT INTO favorites (member_id, source_station_id, target_station_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		favorite.MemberID,
		favorite.SourceStationID,
		favorite.TargetStationID,
		favorite.CreatedAt,
	).Scan(&favorite.ID)

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			log.Warn("duplicate favorite route",
				slog.Int64("member_id", favorite.MemberID),
				slog.Int64("source_station_id", favorite.SourceStationID),
				slog.Int64("target_station_id", favorite.TargetStationID))
			return store.ErrDuplicateFavorite
		}

		if pgErr, ok := foreignKeyViolation(err); ok {
			if strings.Contains(pgErr.ConstraintName, "station") {
				log.Warn("unknown station referenced by favorite",
					slog.Int64("source_station_id", favorite.SourceStationID),
					slog.Int64("target_station_id", favorite.TargetStationID))
				return store.ErrStationNotFound
			}
			log.Warn("owning member no longer exists",
				slog.Int64("member_id", favorite.MemberID))
			return store.ErrMemberNotFound
		}

		log.Error("failed to insert favorite",
			slog.String("error", err.Error()),
			slog.Int64("member_id", favorite.MemberID))
		return err
	}

	log.Info("favorite created successfully",
		slog.Int64("favorite_id", favorite.ID),
		slog.Int64("member_id", favorite.MemberID))
	return nil
}

// FindAllByMember implements store.FavoriteStore.FindAllByMember
// Favorites are returned in insertion order. Returns an empty slice when
// the member has no favorites.
func (s *PostgresFavoriteStore) FindAllByMember(
	ctx context.Context,
	memberID int64,
) ([]domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, member_id, source_station_id, target_station_id, created_at
		FROM favorites
		WHERE member_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, memberID)
	if err != nil {
		log.Error("failed to query favorites by member",
			slog.String("error", err.Error()),
			slog.Int64("member_id", memberID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var favorite domain.Favorite
		err := rows.Scan(
			&favorite.ID,
			&favorite.MemberID,
			&favorite.SourceStationID,
			&favorite.TargetStationID,
			&favorite.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan favorite row",
				slog.String("error", err.Error()))
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("found favorites by member",
		slog.Int64("member_id", memberID),
		slog.Int("count", len(favorites)))
	return favorites, nil
}

// FindByID implements store.FavoriteStore.FindByID
// Returns store.ErrFavoriteNotFound if the favorite does not exist.
func (s *PostgresFavoriteStore) FindByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, member_id, source_station_id, target_station_id, created_at
		FROM favorites
		WHERE id = $1
	`

	var favorite domain.Favorite
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&favorite.ID,
		&favorite.MemberID,
		&favorite.SourceStationID,
		&favorite.TargetStationID,
		&favorite.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("favorite not found", slog.Int64("favorite_id", id))
			return nil, store.ErrFavoriteNotFound
		}
		log.Error("failed to get favorite by ID",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", id))
		return nil, err
	}

	return &favorite, nil
}

// DeleteByID implements store.FavoriteStore.DeleteByID
// Returns store.ErrFavoriteNotFound if the favorite does not exist, so a
// repeated delete fails the same way as the first missing one.
func (s *PostgresFavoriteStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM favorites
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("favorite not found for delete", slog.Int64("favorite_id", id))
		return store.ErrFavoriteNotFound
	}

	log.Info("favorite deleted successfully", slog.Int64("favorite_id", id))
	return nil
}

// ExistsByMemberAndStations implements store.FavoriteStore.ExistsByMemberAndStations
// The match is on the exact directed pair; a favorite from A to B does not
// satisfy a query for B to A.
func (s *PostgresFavoriteStore) ExistsByMemberAndStations(
	ctx context.Context,
	memberID, sourceStationID, targetStationID int64,
) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM favorites
			WHERE member_id = $1 AND source_station_id = $2 AND target_station_id = $3
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, memberID, sourceStationID, targetStationID).
		Scan(&exists)
	if err != nil {
		log.Error("failed to check favorite existence",
			slog.String("error", err.Error()),
			slog.Int64("member_id", memberID))
		return false, err
	}

	return exists, nil
}
