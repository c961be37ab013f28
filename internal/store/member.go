package store

import (
	"context"

	"github.com/wooteco-subway/favorite-api/internal/domain"
)

// MemberStore defines the interface for member data persistence.
type MemberStore interface {
	// Create saves a new member to the store and assigns its ID.
	// The member must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, member *domain.Member) error

	// GetByID retrieves a member by their unique ID.
	// Returns ErrMemberNotFound if the member does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Member, error)

	// GetByEmail retrieves a member by their email address.
	// Returns ErrMemberNotFound if the member does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)

	// Update modifies an existing member's name and hashed password.
	// Returns ErrMemberNotFound if the member does not exist.
	Update(ctx context.Context, member *domain.Member) error

	// Delete removes a member from the store by their ID.
	// The schema cascades the deletion to the member's favorites,
	// so a deleted member leaves no orphaned bookmarks behind.
	// Returns ErrMemberNotFound if the member does not exist.
	Delete(ctx context.Context, id int64) error
}
