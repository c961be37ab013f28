package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrUnknownSubject indicates a structurally valid token whose subject no
	// longer maps to a member, typically because the account was deleted after
	// the token was issued. It must be treated exactly like an invalid token
	// at the boundary so the two cases cannot be told apart.
	ErrUnknownSubject = errors.New("no member matches token subject")

	// ErrInvalidCredentials indicates a login attempt with a wrong email or
	// password. The two causes are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
