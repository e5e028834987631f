package auth

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"booststudio/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const SessionTTL = 24 * time.Hour

type Session struct {
	AdminID   string
	ExpiresAt time.Time
}

// SessionStore owns the in-memory token -> session mapping. Tokens are signed
// JWTs for opacity, but the store is authoritative: a token that is not in the
// map is dead regardless of its signature, which keeps revoke and
// restart-invalidation semantics.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	secret []byte
	ttl    time.Duration
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(secret []byte) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		secret:   secret,
		ttl:      SessionTTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Issue creates a session for adminID and returns its token.
func (s *SessionStore) Issue(adminID string) (string, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	// nonce keeps tokens unique even for same-instant logins
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": adminID,
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
		"rnd":      rand.Int63(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.InternalError{Msg: "échec de création du token", Err: err}
	}

	s.mu.Lock()
	s.sessions[signed] = Session{AdminID: adminID, ExpiresAt: expiresAt}
	s.mu.Unlock()

	return signed, nil
}

// Validate returns the admin identity bound to token. Expired entries are
// evicted on the spot.
func (s *SessionStore) Validate(token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", domain.UnauthorizedError{Msg: "Non autorisé - Session invalide"}
	}
	if !s.now().Before(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", domain.UnauthorizedError{Msg: "Non autorisé - Session expirée"}
	}
	return sess.AdminID, nil
}

// Revoke drops the session unconditionally. Revoking an unknown token is a
// no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports live entries (expired-but-unswept included).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper compacts expired entries periodically so tokens that are never
// validated again don't pile up until restart.
func (s *SessionStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.sweep(); n > 0 {
					log.Printf("[AUTH] action=sweep_sessions removed=%d", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *SessionStore) sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Close stops the sweeper. Sessions are not persisted anywhere.
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}
