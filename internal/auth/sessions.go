package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the session cookie.
const CookieName = "site_session"

// ContextSession is the gin context key holding the authenticated *Session.
const ContextSession = "admin_session"

// ErrNotAdmin is returned when a session exists but lacks the admin flag.
var ErrNotAdmin = errors.New("session is not an admin session")

// Manager ties signed cookie tokens to stored sessions.
type Manager struct {
	store  SessionStore
	tokens *TokenService
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a session manager.
func NewManager(store SessionStore, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		tokens: NewTokenService(secret, ttl),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL is the session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Start opens an admin session and returns the cookie token for it.
func (m *Manager) Start(ctx context.Context) (string, *Session, error) {
	now := m.now()
	s := &Session{ID: uuid.NewString(), Admin: true, CreatedAt: now}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return "", nil, err
	}
	token, err := m.tokens.Generate(s.ID, now)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, s, nil
}

// Resolve returns the admin session behind token.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	id, err := m.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsAdmin(s) {
		return nil, ErrNotAdmin
	}
	return s, nil
}

// End deletes the session behind token. Invalid tokens are ignored.
func (m *Manager) End(ctx context.Context, token string) error {
	id, err := m.tokens.Validate(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// IsAdmin reports whether s carries the admin flag.
func IsAdmin(s *Session) bool {
	return s != nil && s.Admin
}

// FromContext returns the session put there by the admin gate.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}
