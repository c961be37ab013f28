package domain

import (
	"errors"
	"time"
)

// Favorite validation errors
var (
	ErrMissingStationID = errors.New("source and target station ids are required")
	ErrSameStations     = errors.New("source and target stations must differ")
)

// Favorite is a directed bookmark between two stations owned by one member.
// A favorite from A to B is distinct from a favorite from B to A.
// Favorites are immutable after creation; there is no update operation.
type Favorite struct {
	ID              int64     `json:"id"`
	MemberID        int64     `json:"member_id"`
	SourceStationID int64     `json:"source_station_id"`
	TargetStationID int64     `json:"target_station_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewFavorite creates a new Favorite owned by the given member.
// The ID is left zero; the store assigns it on insert.
// Returns an error if validation fails.
func NewFavorite(memberID, sourceStationID, targetStationID int64) (*Favorite, error) {
	favorite := &Favorite{
		MemberID:        memberID,
		SourceStationID: sourceStationID,
		TargetStationID: targetStationID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := favorite.Validate(); err != nil {
		return nil, err
	}

	return favorite, nil
}

// Validate checks the favorite's invariants: both station ids present
// and distinct from each other.
func (f *Favorite) Validate() error {
	if f.SourceStationID <= 0 || f.TargetStationID <= 0 {
		return ErrMissingStationID
	}

	if f.SourceStationID == f.TargetStationID {
		return ErrSameStations
	}

	return nil
}

// FavoriteDetail is a read-only view of a Favorite enriched with the
// display names of its source and target stations. It is constructed
// fresh on every query and never persisted.
type FavoriteDetail struct {
	ID         int64  `json:"id"`
	SourceID   int64  `json:"sourceId"`
	TargetID   int64  `json:"targetId"`
	SourceName string `json:"sourceName"`
	TargetName string `json:"targetName"`
}

// Detail joins the favorite with resolved station names.
func (f *Favorite) Detail(sourceName, targetName string) FavoriteDetail {
	return FavoriteDetail{
		ID:         f.ID,
		SourceID:   f.SourceStationID,
		TargetID:   f.TargetStationID,
		SourceName: sourceName,
		TargetName: targetName,
	}
}
