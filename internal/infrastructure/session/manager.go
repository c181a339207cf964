package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"shopmart/internal/domain/entity"
	"shopmart/pkg/errors"
)

// Manager issues signed session tokens and keeps the authoritative session
// records in memory. The cookie is only a carrier; revocation happens here,
// which is what lets a logout in one tab invalidate every other tab.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu     sync.RWMutex
	active map[string]entity.Session // token id -> session
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		active: make(map[string]entity.Session),
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for the user and returns the signed token.
func (m *Manager) Issue(userID string) (string, entity.Session, error) {
	now := time.Now()
	sess := entity.Session{
		TokenID:   uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.TokenID,
		Subject:   sess.UserID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", entity.Session{}, errors.Internal("Failed to sign session token", err)
	}

	m.mu.Lock()
	m.active[sess.TokenID] = sess
	m.mu.Unlock()

	return token, sess, nil
}

// Verify parses the token and checks the session is still active. A token
// that is malformed, expired or revoked yields an UNAUTHORIZED error.
func (m *Manager) Verify(token string) (entity.Session, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entity.Session{}, errors.Unauthorized("Invalid or expired session", err)
	}

	m.mu.RLock()
	sess, ok := m.active[claims.ID]
	m.mu.RUnlock()

	if !ok {
		return entity.Session{}, errors.Unauthorized("Session has been revoked", nil)
	}
	if sess.Expired(time.Now()) {
		m.mu.Lock()
		delete(m.active, claims.ID)
		m.mu.Unlock()
		return entity.Session{}, errors.Unauthorized("Session has expired", nil)
	}

	return sess, nil
}

// Revoke removes a single session by its token id.
func (m *Manager) Revoke(tokenID string) {
	m.mu.Lock()
	delete(m.active, tokenID)
	m.mu.Unlock()
}

// RevokeAll removes every session belonging to the user.
func (m *Manager) RevokeAll(userID string) {
	m.mu.Lock()
	for id, sess := range m.active {
		if sess.UserID == userID {
			delete(m.active, id)
		}
	}
	m.mu.Unlock()
}
