package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/service"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
)

// fakeIdentityResolver maps exact token strings to members.
type fakeIdentityResolver struct {
	members map[string]*domain.Member
	errs    map[string]error
}

var _ service.IdentityResolver = (*fakeIdentityResolver)(nil)

func (r *fakeIdentityResolver) Resolve(ctx context.Context, tokenString string) (*domain.Member, error) {
	if err, ok := r.errs[tokenString]; ok {
		return nil, err
	}
	if member, ok := r.members[tokenString]; ok {
		return member, nil
	}
	return nil, auth.ErrInvalidToken
}

func TestAuthenticateRejectsUniformly(t *testing.T) {
	t.Parallel()

	resolver := &fakeIdentityResolver{
		members: map[string]*domain.Member{},
		errs: map[string]error{
			"expired-token": auth.ErrExpiredToken,
			"orphan-token":  auth.ErrUnknownSubject,
		},
	}

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "no authorization header", authHeader: ""},
		{name: "missing bearer prefix", authHeader: "some-token"},
		{name: "wrong scheme", authHeader: "Basic some-token"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "unknown token", authHeader: "Bearer garbage"},
		{name: "expired token", authHeader: "Bearer expired-token"},
		{name: "token for deleted account", authHeader: "Bearer orphan-token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			middleware := NewAuthMiddleware(resolver, nil)
			handler := middleware.Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler must not run for rejected requests")
				}))

			req := httptest.NewRequest(http.MethodGet, "/me/favorites", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			// Every rejection cause yields the same status and body so
			// callers learn nothing from the difference.
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Unauthorized", body["error"])
		})
	}
}

func TestAuthenticateReportsStoreOutageAsServerFailure(t *testing.T) {
	t.Parallel()

	// A structurally fine token whose member lookup dies on the way to
	// the database. That is not a verdict about the caller's credentials
	// and must not come back as 401.
	resolver := &fakeIdentityResolver{
		errs: map[string]error{
			"good-token": fmt.Errorf(
				"failed to resolve identity: %w",
				errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")),
		},
	}

	middleware := NewAuthMiddleware(resolver, nil)
	handler := middleware.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run when identity resolution fails")
		}))

	req := httptest.NewRequest(http.MethodGet, "/me/favorites", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body["error"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.5",
		"internal addresses stay in the logs")
}

func TestAuthenticateBindsMember(t *testing.T) {
	t.Parallel()

	member := &domain.Member{ID: 42, Email: "rider@subway.kr", Name: "rider"}
	resolver := &fakeIdentityResolver{
		members: map[string]*domain.Member{"good-token": member},
	}

	middleware := NewAuthMiddleware(resolver, nil)

	var seen *domain.Member
	handler := middleware.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bound, ok := MemberFromRequest(r)
			require.True(t, ok)
			seen = bound
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/me/favorites", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(42), seen.ID)
}

func TestAuthenticateSchemeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	member := &domain.Member{ID: 1, Email: "rider@subway.kr", Name: "rider"}
	resolver := &fakeIdentityResolver{
		members: map[string]*domain.Member{"good-token": member},
	}

	middleware := NewAuthMiddleware(resolver, nil)
	handler := middleware.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateDoesNotPersistAcrossRequests(t *testing.T) {
	t.Parallel()

	member := &domain.Member{ID: 1, Email: "rider@subway.kr", Name: "rider"}
	resolver := &fakeIdentityResolver{
		members: map[string]*domain.Member{"good-token": member},
	}

	middleware := NewAuthMiddleware(resolver, nil)
	handler := middleware.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	// First request authenticates.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A following request without credentials starts from scratch.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
