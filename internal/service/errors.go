package service

import "errors"

// Common service errors
var (
	// ErrInvalidFavorite indicates a favorite request with missing station
	// ids or with source equal to target.
	ErrInvalidFavorite = errors.New("invalid favorite request")
)
