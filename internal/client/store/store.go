// Package store persists the session between runs: the bearer token and the
// cached user record, stored under two keys in the local state database.
//
// The store is a best-effort cache, not an authority: expiry of the token is
// enforced only by the backend rejecting it later, and a write that fails
// mid-flight leaves the in-memory session as the source of truth.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/repositories/metadata"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the persisted half of the session.
type Store interface {
	// Save writes the token and the user. Two sequential writes, no
	// transaction guarantee: a failure between them can leave only the
	// token persisted.
	Save(ctx context.Context, token string, user *models.User) error

	// SaveUser rewrites only the cached user record, leaving the token as is.
	SaveUser(ctx context.Context, user *models.User) error

	// Read loads the persisted session. A missing token yields ("", nil, nil);
	// a token without a readable user yields (token, nil, nil).
	Read(ctx context.Context) (string, *models.User, error)

	// Token returns the current persisted token, or "" if none. Errors are
	// swallowed: the request pipeline treats an unreadable store as "no token".
	Token(ctx context.Context) string

	// Clear removes both keys.
	Clear(ctx context.Context) error
}

// SessionStore is the SQLite-backed Store.
type SessionStore struct {
	repo metadata.Repository
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{repo: metadata.NewSQLiteRepository(db)}
}

func (s *SessionStore) Save(ctx context.Context, token string, user *models.User) error {
	if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return s.SaveUser(ctx, user)
}

func (s *SessionStore) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.repo.Delete(ctx, keyUser)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := s.repo.Set(ctx, keyUser, data); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *SessionStore) Read(ctx context.Context) (string, *models.User, error) {
	tokenBytes, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return "", nil, err
	}
	if len(tokenBytes) == 0 {
		return "", nil, nil
	}

	userBytes, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return string(tokenBytes), nil, err
	}
	if len(userBytes) == 0 {
		return string(tokenBytes), nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		// A corrupt cached record is not fatal: the session machine will
		// refresh the user from the backend.
		return string(tokenBytes), nil, nil
	}
	return string(tokenBytes), &user, nil
}

func (s *SessionStore) Token(ctx context.Context) string {
	tokenBytes, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return ""
	}
	return string(tokenBytes)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyToken); err != nil {
		return err
	}
	return s.repo.Delete(ctx, keyUser)
}
