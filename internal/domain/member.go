package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordHasSpaces   = errors.New("password must not contain spaces")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Member represents a registered member of the subway service.
// The ID is assigned by the store on creation.
type Member struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext password, only set during registration/updates
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewMember creates a new Member with the given email, name and plaintext password.
// The caller is responsible for hashing the password before storing the member.
// Returns an error if validation fails.
func NewMember(email, name, password string) (*Member, error) {
	member := &Member{
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks if the Member has valid data.
// Returns an error if any field fails validation.
func (m *Member) Validate() error {
	if m.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(m.Email) {
		return ErrInvalidEmail
	}

	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}

	if m.Password != "" {
		if strings.ContainsRune(m.Password, ' ') {
			return ErrPasswordHasSpaces
		}
	} else {
		// Existing members loaded from the store carry only the hash.
		if m.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs basic validation of email format:
// a non-empty local part, an @, and a dotted domain part.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
