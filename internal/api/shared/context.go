package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/wooteco-subway/favorite-api/internal/domain"
)

// ContextKey is the key type for context values set by this API layer.
type ContextKey string

// Context keys for various values
const (
	// MemberContextKey is the context key for the authenticated member
	// bound by the auth middleware. The binding is request-scoped only.
	MemberContextKey ContextKey = "member"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// WithMember returns a context carrying the authenticated member.
func WithMember(ctx context.Context, member *domain.Member) context.Context {
	return context.WithValue(ctx, MemberContextKey, member)
}

// MemberFromContext retrieves the authenticated member from the context.
// Returns the member and a boolean indicating if it was found.
func MemberFromContext(ctx context.Context) (*domain.Member, bool) {
	member, ok := ctx.Value(MemberContextKey).(*domain.Member)
	if !ok || member == nil {
		return nil, false
	}
	return member, true
}

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
