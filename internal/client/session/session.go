// Package session holds the authentication state of the client: the current
// bearer token and user record, persisted write-through to the local store.
//
// The manager is the single writer of that state. The api pipeline reads the
// token through TokenSource and reports rejected tokens through
// HandleUnauthorized; everything else goes through the explicit transitions
// Login, Logout, SetUser and Bootstrap.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/store"
	"github.com/avolkovs/storekeeper/internal/common"
	"github.com/avolkovs/storekeeper/internal/logging"
)

// Snapshot is a point-in-time copy of the session state.
// IsAuthenticated is always equivalent to Token != "".
type Snapshot struct {
	Token           string
	User            *models.User
	IsAuthenticated bool
}

// Validator checks whether the current token is still accepted by the
// backend. Satisfied by services.AuthService.
type Validator interface {
	Validate(ctx context.Context) error
}

// ProfileFetcher loads the caller's own user record.
// Satisfied by services.UserService.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.User, error)
}

// Manager owns the session state. Safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	token string
	user  *models.User

	store  store.Store
	logger logging.Logger
}

func NewManager(st store.Store, logger logging.Logger) *Manager {
	return &Manager{store: st, logger: logger}
}

// Snapshot returns a copy of the current state. The user record is copied so
// callers cannot mutate the session through it.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Token:           m.token,
		User:            copyUser(m.user),
		IsAuthenticated: m.token != "",
	}
}

// Token returns the current bearer token, or "" when anonymous. Used as the
// api pipeline's TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Login enters the authenticated state with the given token and user, writing
// both through to the store. A store failure does not roll back the in-memory
// state; it is logged and the session stays usable for this run.
func (m *Manager) Login(ctx context.Context, token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = copyUser(user)
	m.mu.Unlock()

	if err := m.store.Save(ctx, token, user); err != nil {
		m.logger.Warn(ctx, "failed to persist session", "error", err)
	}
}

// Logout returns to the anonymous state and clears the store.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

// SetUser replaces the cached user record, keeping the token. When the email
// changed, EmailVerified is forced to false locally: the backend resets
// verification on email change and the cached record must not claim otherwise
// before the next refresh.
func (m *Manager) SetUser(ctx context.Context, user *models.User) {
	user = copyUser(user)

	m.mu.Lock()
	if user != nil && m.user != nil && m.user.Email != user.Email {
		user.EmailVerified = false
	}
	m.user = user
	m.mu.Unlock()

	if err := m.store.SaveUser(ctx, user); err != nil {
		m.logger.Warn(ctx, "failed to persist user record", "error", err)
	}
}

// User returns a copy of the current user record, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyUser(m.user)
}

// HandleUnauthorized drops the session after the backend rejected the token.
// Idempotent: repeated calls (several 401s in flight) after the first are
// no-ops. Wired into the api pipeline as the unauthorized handler.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	wasAuthenticated := m.token != ""
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if !wasAuthenticated {
		return
	}
	ctx := context.Background()
	m.logger.Info(ctx, "session rejected by backend, logging out")
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

// Bootstrap restores the persisted session and revalidates it against the
// backend. A definitive rejection (the backend answering 401) logs out; a
// transport failure keeps the restored session, because an unreachable
// backend says nothing about token validity.
func (m *Manager) Bootstrap(ctx context.Context, validator Validator, profiles ProfileFetcher) error {
	token, user, err := m.store.Read(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()

	if err := validator.Validate(ctx); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			// HandleUnauthorized already fired via the pipeline, but calling
			// it again is harmless and covers validators not wired through it.
			m.HandleUnauthorized()
			return nil
		}
		m.logger.Warn(ctx, "token revalidation unavailable, keeping session", "error", err)
		return nil
	}

	// Refresh the cached user record; a stale or missing record is repaired
	// here, a failed refresh is tolerated.
	fresh, err := profiles.Me(ctx)
	if err != nil {
		m.logger.Warn(ctx, "failed to refresh profile", "error", err)
		return nil
	}
	m.SetUser(ctx, fresh)
	return nil
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Roles != nil {
		c.Roles = append([]models.Role(nil), u.Roles...)
	}
	if u.AvatarURL != nil {
		v := *u.AvatarURL
		c.AvatarURL = &v
	}
	return &c
}
