package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is the generic version of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a member with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrMemberNotFound indicates that the requested member does not exist in the store.
	ErrMemberNotFound = fmt.Errorf("%w: member", ErrNotFound)

	// ErrFavoriteNotFound indicates that the requested favorite does not exist
	// in the store. It is also the error surfaced when a favorite exists but is
	// owned by another member, so the two conditions are indistinguishable to
	// the caller.
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)

	// ErrStationNotFound indicates that a station id references no known station.
	ErrStationNotFound = fmt.Errorf("%w: station", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a member with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrDuplicateFavorite indicates that the member already holds a favorite
	// with the same directed (source, target) pair.
	ErrDuplicateFavorite = fmt.Errorf("%w: favorite", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
