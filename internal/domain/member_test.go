package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		userName string
		password string
		wantErr  error
	}{
		{
			name:     "valid member",
			email:    "rider@subway.kr",
			userName: "rider",
			password: "secret1234",
			wantErr:  nil,
		},
		{
			name:     "empty email",
			email:    "",
			userName: "rider",
			password: "secret1234",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without domain dot",
			email:    "rider@subway",
			userName: "rider",
			password: "secret1234",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without local part",
			email:    "@subway.kr",
			userName: "rider",
			password: "secret1234",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "blank name",
			email:    "rider@subway.kr",
			userName: "   ",
			password: "secret1234",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "empty password",
			email:    "rider@subway.kr",
			userName: "rider",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password with spaces",
			email:    "rider@subway.kr",
			userName: "rider",
			password: "bad password",
			wantErr:  ErrPasswordHasSpaces,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			member, err := NewMember(tt.email, tt.userName, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, member)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, member)
			assert.Equal(t, tt.email, member.Email)
			assert.Equal(t, tt.userName, member.Name)
		})
	}
}

func TestMemberValidateLoadedFromStore(t *testing.T) {
	t.Parallel()

	// A member loaded from the store has no plaintext password, only
	// the hash. Validation must accept that shape.
	member := &Member{
		ID:             1,
		Email:          "rider@subway.kr",
		Name:           "rider",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	assert.NoError(t, member.Validate())

	member.HashedPassword = ""
	assert.ErrorIs(t, member.Validate(), ErrEmptyPassword)
}
