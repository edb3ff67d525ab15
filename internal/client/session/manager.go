// Package session owns the client's belief about who is signed in.
//
// A Manager is the single authority for the session: it is the only writer of
// the persistent Store, and it publishes every change to subscribed observers
// (the REPL prompt, for instance). One Manager is built in main and handed to
// every consumer.
package session

import (
	"context"
	"sync"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

// Authenticator is the part of the identity backend the Manager calls.
// client.IdentityHTTPClient satisfies it.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Registration, error)
}

// Manager is safe for concurrent use.
//
// Overlapping Login calls are not coalesced: the last one to complete decides
// both the published state and the stored record. Observers run on the
// publishing goroutine and must not call Login, Logout or Subscribe.
type Manager struct {
	auth   Authenticator
	store  Store
	logger logging.Logger

	mu         sync.RWMutex
	user       *models.User
	credential string

	bus *broadcaster
}

// NewManager restores the session found in store, if any.
func NewManager(ctx context.Context, auth Authenticator, store Store, logger logging.Logger) *Manager {
	m := &Manager{
		auth:   auth,
		store:  store,
		logger: logger.With("component", "session"),
	}

	if u, ok := store.Read(ctx); ok {
		m.user = u
		m.credential = store.Credential(ctx)
		m.logger.Info(ctx, "session restored", "user_id", u.ID, "username", u.Username)
	}
	m.bus = newBroadcaster(m.user)
	return m
}

// CurrentUser returns a copy of the signed-in user, or nil when anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user.Clone()
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// Credential returns the bearer credential of the current session, or "".
func (m *Manager) Credential() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.credential
}

// Subscribe calls fn with the current session right away and then with every
// later change, in publish order.
func (m *Manager) Subscribe(fn Observer) *Subscription {
	return m.bus.subscribe(fn)
}

// Login authenticates against the backend. On success the user is stored and
// published. On failure nothing changes and the backend error is returned.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	u, credential, err := m.auth.Login(ctx, req)
	if err != nil {
		m.logger.Warn(ctx, "login failed", "username", req.Username, "error", err)
		return nil, err
	}

	// The backend has accepted the login, so persist it even if the caller
	// gives up now.
	persistCtx := context.WithoutCancel(ctx)
	m.bus.publish(u, func() {
		if err := m.store.Write(persistCtx, u, credential); err != nil {
			m.logger.Warn(ctx, "session not persisted", "user_id", u.ID, "error", err)
		}
		m.mu.Lock()
		m.user = u.Clone()
		m.credential = credential
		m.mu.Unlock()
	})

	m.logger.Info(ctx, "login succeeded", "user_id", u.ID, "username", u.Username)
	return u.Clone(), nil
}

// Register creates an account. It never signs the user in.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*models.Registration, error) {
	reg, err := m.auth.Register(ctx, req)
	if err != nil {
		m.logger.Warn(ctx, "registration failed", "username", req.Username, "error", err)
		return nil, err
	}
	m.logger.Info(ctx, "registration succeeded", "user_id", reg.UserID, "username", reg.Username)
	return reg, nil
}

// Logout drops the session unconditionally. No backend call is made.
func (m *Manager) Logout(ctx context.Context) {
	persistCtx := context.WithoutCancel(ctx)
	m.bus.publish(nil, func() {
		if err := m.store.Clear(persistCtx); err != nil {
			m.logger.Warn(ctx, "stored session not cleared", "error", err)
		}
		m.mu.Lock()
		m.user = nil
		m.credential = ""
		m.mu.Unlock()
	})
	m.logger.Info(ctx, "logged out")
}
