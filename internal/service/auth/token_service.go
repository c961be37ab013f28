// Package auth provides token issuance and verification plus password
// hashing for member authentication.
package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing bearer authentication tokens.
type TokenService interface {
	// Issue creates a signed access token whose subject is the member's email.
	// Returns the token string or an error if signing fails.
	Issue(ctx context.Context, email string) (string, error)

	// Verify validates the provided token string and extracts the claims.
	// Returns the claims if the token is valid, or a sentinel error if
	// validation fails (malformed, expired, invalid signature, etc.).
	// Validation failure is a routine outcome, never a panic.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by an access token.
type Claims struct {
	// Subject is the email of the member the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
