package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wooteco-subway/favorite-api/internal/service"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{auth.ErrUnknownSubject, http.StatusUnauthorized},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{store.ErrMemberNotFound, http.StatusNotFound},
		{store.ErrFavoriteNotFound, http.StatusNotFound},
		{store.ErrEmailExists, http.StatusConflict},
		{store.ErrDuplicateFavorite, http.StatusConflict},
		{service.ErrInvalidFavorite, http.StatusBadRequest},
		{store.ErrStationNotFound, http.StatusBadRequest},
		{errors.New("something unexpected"), http.StatusInternalServerError},
		// Wrapped errors map the same as their sentinels.
		{fmt.Errorf("%w: source and target must differ", service.ErrInvalidFavorite), http.StatusBadRequest},
		{fmt.Errorf("outer: %w", store.ErrFavoriteNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err), "error %v", tt.err)
	}
}

func TestGetSafeErrorMessageHidesInternals(t *testing.T) {
	t.Parallel()

	// Authentication failures all read the same.
	for _, err := range []error{
		auth.ErrInvalidToken,
		auth.ErrExpiredToken,
		auth.ErrUnknownSubject,
	} {
		assert.Equal(t, "Unauthorized", GetSafeErrorMessage(err))
	}

	// Internal details never reach the client.
	internal := errors.New("pq: connection refused host=10.0.0.5")
	msg := GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.5")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
