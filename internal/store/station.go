package store

import "context"

// StationNameResolver resolves station ids into display names.
type StationNameResolver interface {
	// NameOf returns the display name for the station id.
	// Returns ErrStationNotFound if the id references no station.
	NameOf(ctx context.Context, id int64) (string, error)
}
