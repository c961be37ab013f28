package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// IdentityResolver maps a bearer token to the member it was issued for.
type IdentityResolver interface {
	// Resolve verifies the token and looks up the member named by its
	// subject claim. Returns auth sentinel errors for invalid or expired
	// tokens, and auth.ErrUnknownSubject when the subject maps to no
	// member — the deleted-account race, which callers must treat exactly
	// like an invalid token.
	Resolve(ctx context.Context, tokenString string) (*domain.Member, error)
}

// identityResolver implements IdentityResolver on top of a TokenService
// and a MemberStore.
type identityResolver struct {
	tokens  auth.TokenService
	members store.MemberStore
	logger  *slog.Logger
}

// Ensure identityResolver implements IdentityResolver
var _ IdentityResolver = (*identityResolver)(nil)

// NewIdentityResolver creates a new IdentityResolver.
// If logger is nil, a default logger will be used.
func NewIdentityResolver(
	tokens auth.TokenService,
	members store.MemberStore,
	logger *slog.Logger,
) IdentityResolver {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if members == nil {
		panic("members cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &identityResolver{
		tokens:  tokens,
		members: members,
		logger:  logger.With(slog.String("component", "identity_resolver")),
	}
}

// Resolve implements IdentityResolver.Resolve.
func (r *identityResolver) Resolve(ctx context.Context, tokenString string) (*domain.Member, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	claims, err := r.tokens.Verify(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	member, err := r.members.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			// Token outlived the account. Reject like any other bad token.
			log.Debug("token subject maps to no member")
			return nil, auth.ErrUnknownSubject
		}
		log.Error("failed to look up member for token subject",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	return member, nil
}
