package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// FavoriteService provides the favorite-bookmark operations. Every method
// acts on behalf of the authenticated member identified by memberID, which
// the HTTP layer takes from the request context bound by the auth guard.
type FavoriteService interface {
	// Create persists a new favorite owned by the member and returns it
	// with its assigned id.
	// Returns ErrInvalidFavorite when either station id is missing or the
	// two are equal; store.ErrDuplicateFavorite when the member already
	// holds the pair; store.ErrStationNotFound when an id references no
	// station.
	Create(ctx context.Context, memberID, sourceStationID, targetStationID int64) (*domain.Favorite, error)

	// ListDetails returns one FavoriteDetail per favorite the member owns,
	// in store order, with station names resolved at read time. A member
	// with no favorites gets an empty slice, not an error.
	ListDetails(ctx context.Context, memberID int64) ([]domain.FavoriteDetail, error)

	// Exists reports whether the member owns a favorite with this exact
	// directed pair.
	Exists(ctx context.Context, memberID, sourceStationID, targetStationID int64) (bool, error)

	// Delete removes the favorite permanently. Returns
	// store.ErrFavoriteNotFound both when no favorite has this id and when
	// one does but belongs to another member, so the caller cannot probe
	// other members' bookmarks. A repeated delete fails the same way.
	Delete(ctx context.Context, memberID, favoriteID int64) error
}

// favoriteService implements FavoriteService.
type favoriteService struct {
	favorites store.FavoriteStore
	stations  store.StationNameResolver
	logger    *slog.Logger
}

// Ensure favoriteService implements FavoriteService
var _ FavoriteService = (*favoriteService)(nil)

// NewFavoriteService creates a new FavoriteService.
// If logger is nil, a default logger will be used.
func NewFavoriteService(
	favorites store.FavoriteStore,
	stations store.StationNameResolver,
	logger *slog.Logger,
) FavoriteService {
	if favorites == nil {
		panic("favorites cannot be nil")
	}
	if stations == nil {
		panic("stations cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &favoriteService{
		favorites: favorites,
		stations:  stations,
		logger:    logger.With(slog.String("component", "favorite_service")),
	}
}

// Create implements FavoriteService.Create.
// Duplicate-pair prevention is not checked here; the store's unique
// constraint is the authority, so concurrent creates of the same pair
// cannot both succeed.
func (s *favoriteService) Create(
	ctx context.Context,
	memberID, sourceStationID, targetStationID int64,
) (*domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	favorite, err := domain.NewFavorite(memberID, sourceStationID, targetStationID)
	if err != nil {
		log.Warn("invalid favorite request",
			slog.String("error", err.Error()),
			slog.Int64("member_id", memberID),
			slog.Int64("source_station_id", sourceStationID),
			slog.Int64("target_station_id", targetStationID))
		return nil, fmt.Errorf("%w: %v", ErrInvalidFavorite, err)
	}

	if err := s.favorites.Insert(ctx, favorite); err != nil {
		if errors.Is(err, store.ErrDuplicateFavorite) ||
			errors.Is(err, store.ErrStationNotFound) {
			return nil, err
		}
		log.Error("failed to create favorite",
			slog.String("error", err.Error()),
			slog.Int64("member_id", memberID))
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	return favorite, nil
}

// ListDetails implements FavoriteService.ListDetails.
// Station names are resolved on every call rather than denormalized at
// create time, so a renamed station shows its current name.
func (s *favoriteService) ListDetails(
	ctx context.Context,
	memberID int64,
) ([]domain.FavoriteDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	favorites, err := s.favorites.FindAllByMember(ctx, memberID)
	if err != nil {
		log.Error("failed to list favorites",
			slog.String("error", err.Error()),
			slog.Int64("member_id", memberID))
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	details := make([]domain.FavoriteDetail, 0, len(favorites))
	for _, favorite := range favorites {
		sourceName, err := s.stations.NameOf(ctx, favorite.SourceStationID)
		if err != nil {
			log.Error("failed to resolve source station name",
				slog.String("error", err.Error()),
				slog.Int64("favorite_id", favorite.ID),
				slog.Int64("station_id", favorite.SourceStationID))
			return nil, fmt.Errorf("failed to resolve station name: %w", err)
		}

		targetName, err := s.stations.NameOf(ctx, favorite.TargetStationID)
		if err != nil {
			log.Error("failed to resolve target station name",
				slog.String("error", err.Error()),
				slog.Int64("favorite_id", favorite.ID),
				slog.Int64("station_id", favorite.TargetStationID))
			return nil, fmt.Errorf("failed to resolve station name: %w", err)
		}

		details = append(details, favorite.Detail(sourceName, targetName))
	}

	return details, nil
}

// Exists implements FavoriteService.Exists.
func (s *favoriteService) Exists(
	ctx context.Context,
	memberID, sourceStationID, targetStationID int64,
) (bool, error) {
	exists, err := s.favorites.ExistsByMemberAndStations(
		ctx, memberID, sourceStationID, targetStationID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}
	return exists, nil
}

// Delete implements FavoriteService.Delete.
func (s *favoriteService) Delete(ctx context.Context, memberID, favoriteID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	favorite, err := s.favorites.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return store.ErrFavoriteNotFound
		}
		log.Error("failed to load favorite for delete",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", favoriteID))
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	if favorite.MemberID != memberID {
		// Same error as a missing favorite. The response must not reveal
		// that the id exists under another member.
		log.Warn("member attempted to delete a favorite they do not own",
			slog.Int64("member_id", memberID),
			slog.Int64("favorite_id", favoriteID))
		return store.ErrFavoriteNotFound
	}

	if err := s.favorites.DeleteByID(ctx, favoriteID); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return store.ErrFavoriteNotFound
		}
		log.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", favoriteID))
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	log.Info("favorite deleted",
		slog.Int64("member_id", memberID),
		slog.Int64("favorite_id", favoriteID))
	return nil
}
