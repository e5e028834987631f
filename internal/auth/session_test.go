package auth

import (
	"sync"
	"testing"
	"time"

	"booststudio/internal/domain"
)

func newTestStore() *SessionStore {
	return NewSessionStore([]byte("test-secret"))
}

func TestIssueThenValidate(t *testing.T) {
	s := newTestStore()

	token, err := s.Issue("ADMIN-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	adminID, err := s.Validate(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if adminID != "ADMIN-1" {
		t.Fatalf("admin id: got %q want ADMIN-1", adminID)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	s := newTestStore()

	if _, err := s.Validate("nope"); !domain.IsUnauthorized(err) {
		t.Fatalf("unknown token should be unauthorized, got %v", err)
	}
}

func TestRevokeIsTerminalAndIdempotent(t *testing.T) {
	s := newTestStore()

	token, err := s.Issue("ADMIN-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	s.Revoke(token)
	if _, err := s.Validate(token); !domain.IsUnauthorized(err) {
		t.Fatalf("revoked token should be unauthorized, got %v", err)
	}

	// second revoke is a no-op
	s.Revoke(token)
	if s.Len() != 0 {
		t.Fatalf("store should be empty, has %d entries", s.Len())
	}
}

func TestExpiryEvictsLazily(t *testing.T) {
	s := newTestStore()

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	token, err := s.Issue("ADMIN-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	// still valid one minute before expiry
	current = current.Add(SessionTTL - time.Minute)
	if _, err := s.Validate(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// dead exactly at the expiry instant
	current = current.Add(time.Minute)
	if _, err := s.Validate(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expired token should be unauthorized, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expired entry should have been evicted, store has %d", s.Len())
	}
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	s := newTestStore()

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	old, err := s.Issue("ADMIN-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	current = current.Add(SessionTTL + time.Minute)
	fresh, err := s.Issue("ADMIN-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if removed := s.sweep(); removed != 1 {
		t.Fatalf("sweep removed %d entries, want 1", removed)
	}
	if _, err := s.Validate(old); !domain.IsUnauthorized(err) {
		t.Fatalf("swept token should be unauthorized, got %v", err)
	}
	if _, err := s.Validate(fresh); err != nil {
		t.Fatalf("fresh token should survive the sweep: %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.Issue("ADMIN-1")
			if err != nil {
				t.Errorf("issue error: %v", err)
				return
			}
			if _, err := s.Validate(token); err != nil {
				t.Errorf("validate error: %v", err)
				return
			}
			s.Revoke(token)
		}()
	}
	wg.Wait()

	if s.Len() != 0 {
		t.Fatalf("all sessions revoked, store should be empty, has %d", s.Len())
	}
}
