package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hooplens/nba-backend/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the fixed in-memory credential store. It is seeded once at
// construction and never mutated at runtime.
type UserStore struct {
	users map[string]*model.User
}

// NewUserStore seeds the demo credential set: one admin and one regular user.
func NewUserStore() (*UserStore, error) {
	seed := []struct {
		id       int
		username string
		password string
		role     string
	}{
		{1, "admin", "admin123", model.RoleAdmin},
		{2, "user", "user123", model.RoleUser},
	}

	users := make(map[string]*model.User, len(seed))
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", u.username, err)
		}
		users[u.username] = &model.User{
			ID:           u.id,
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
		}
	}
	return &UserStore{users: users}, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *UserStore) Authenticate(username, password string) (*model.User, error) {
	user, ok := s.users[strings.TrimSpace(username)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
