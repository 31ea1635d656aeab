package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplens/nba-backend/internal/model"
)

func TestAuthenticateSeededUsers(t *testing.T) {
	store, err := NewUserStore()
	require.NoError(t, err)

	admin, err := store.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	user, err := store.Authenticate("user", "user123")
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	store, err := NewUserStore()
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope123"},
		{"unknown user", "ghost", "admin123"},
		{"empty password", "user", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Authenticate(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestPasswordHashesAreNotPlaintext(t *testing.T) {
	store, err := NewUserStore()
	require.NoError(t, err)

	for name, u := range store.users {
		assert.NotContains(t, u.PasswordHash, "123", "hash for %s looks like plaintext", name)
	}
}
