package store

import (
	"context"

	"github.com/wooteco-subway/favorite-api/internal/domain"
)

// FavoriteStore defines the interface for favorite data persistence.
//
// Uniqueness of the (member, source, target) triple is enforced here, at
// the storage level, rather than by an application-side check-then-act:
// concurrent creates of the same pair race, and only a storage constraint
// closes that window.
type FavoriteStore interface {
	// Insert saves a new favorite and assigns its ID.
	// Returns ErrDuplicateFavorite if the member already holds a favorite
	// with the same directed station pair.
	// Returns ErrStationNotFound if either station id references no station.
	// Returns ErrMemberNotFound if the owning member no longer exists.
	Insert(ctx context.Context, favorite *domain.Favorite) error

	// FindAllByMember retrieves all favorites owned by the member,
	// in insertion order. Returns an empty slice when the member has none.
	FindAllByMember(ctx context.Context, memberID int64) ([]domain.Favorite, error)

	// FindByID retrieves a favorite by its unique ID.
	// Returns ErrFavoriteNotFound if the favorite does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Favorite, error)

	// DeleteByID removes a favorite permanently.
	// Returns ErrFavoriteNotFound if the favorite does not exist.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByMemberAndStations reports whether the member owns a favorite
	// with this exact directed pair. Direction matters.
	ExistsByMemberAndStations(
		ctx context.Context,
		memberID, sourceStationID, targetStationID int64,
	) (bool, error)
}
