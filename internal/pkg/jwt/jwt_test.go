package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplens/nba-backend/internal/model"
)

var testUser = &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-one"), time.Hour)
	verifier := NewService([]byte("secret-two"), time.Hour)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := NewServiceWithClock([]byte("test-secret"), time.Hour, clock)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)

	// Still valid just before expiry.
	now = now.Add(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
