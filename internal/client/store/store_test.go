package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkovs/storekeeper/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SessionStore {
	t.Helper()
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionStore(db)
}

func testUser() *models.User {
	return &models.User{
		ID:        7,
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
		Roles:     []models.Role{{ID: 1, Name: models.RoleUser}},
	}
}

func TestSessionStore_SaveRead(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-123", testUser()))

	token, user, err := s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "jane@example.com", user.Email)
}

func TestSessionStore_ReadEmpty(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	token, user, err := s.Read(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-123", testUser()))
	require.NoError(t, s.Clear(ctx))

	token, user, err := s.Read(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
	require.Empty(t, s.Token(ctx))
}

func TestSessionStore_SaveUserKeepsToken(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-123", testUser()))

	updated := testUser()
	updated.Firstname = "Janet"
	require.NoError(t, s.SaveUser(ctx, updated))

	token, user, err := s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.Equal(t, "Janet", user.Firstname)
}

func TestSessionStore_CorruptUserIsDropped(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s := NewSessionStore(db)

	require.NoError(t, s.Save(ctx, "tok-123", testUser()))
	_, err = db.ExecContext(ctx, `UPDATE metadata SET value = ? WHERE key = 'user'`, []byte("{broken"))
	require.NoError(t, err)

	token, user, err := s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.Nil(t, user)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
}
