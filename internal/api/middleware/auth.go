package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wooteco-subway/favorite-api/internal/api/shared"
	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/service"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
)

// AuthMiddleware guards routes with bearer-token authentication. Every
// rejection, whatever the cause, produces the same 401 response so the
// error body never tells a caller whether a token was malformed, expired,
// or issued for an account that no longer exists.
type AuthMiddleware struct {
	identity service.IdentityResolver
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAuthMiddleware(identity service.IdentityResolver, logger *slog.Logger) *AuthMiddleware {
	if identity == nil {
		panic("identity cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		identity: identity,
		logger:   logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate resolves the bearer token from the Authorization header to
// a member and binds that member to the request context for downstream
// handlers. The binding lasts for this request only; the next request
// starts from its own Authorization header.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.reject(w, r, "missing or malformed authorization header", nil)
			return
		}

		member, err := m.identity.Resolve(r.Context(), token)
		if err != nil {
			// Only authentication outcomes earn the uniform 401. A member
			// lookup that failed for infrastructure reasons is a server
			// fault and must not masquerade as a credential problem.
			if !isAuthenticationError(err) {
				shared.RespondWithErrorAndLog(w, r,
					http.StatusInternalServerError,
					"An unexpected error occurred", err)
				return
			}
			m.reject(w, r, "token rejected", err)
			return
		}

		ctx := shared.WithMember(r.Context(), member)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthenticationError reports whether err is one of the auth sentinels,
// i.e. a verdict about the token or its subject rather than a failure to
// reach one.
func isAuthenticationError(err error) bool {
	return errors.Is(err, auth.ErrMissingToken) ||
		errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrTokenNotYetValid) ||
		errors.Is(err, auth.ErrUnknownSubject)
}

// reject writes the uniform 401 response. The precise cause goes to the
// logs only.
func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	attrs := []any{
		slog.String("reason", reason),
		slog.String("path", r.URL.Path),
		slog.String("trace_id", shared.GetTraceID(r.Context())),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	m.logger.Debug("rejected unauthenticated request", attrs...)

	shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
}

// extractBearerToken pulls the token out of an Authorization header value.
// The scheme comparison is case-insensitive per RFC 6750; the token itself
// must be non-empty.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// MemberFromRequest extracts the authenticated member from the request
// context. Returns the member and a boolean indicating if it was found.
func MemberFromRequest(r *http.Request) (*domain.Member, bool) {
	return shared.MemberFromContext(r.Context())
}
