package sessionrepo

import (
	"fmt"
	"sync"
	"time"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
)

type entry struct {
	sess      *session.Session
	expiresAt time.Time
}

// InMemoryRepo is an in-memory implementation of Repo with a fixed
// per-visit time to live.
type InMemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	nowTime func() time.Time
}

// NewInMemoryRepo creates a new in-memory session repository.
func NewInMemoryRepo(ttl time.Duration) *InMemoryRepo {
	return &InMemoryRepo{
		entries: make(map[string]entry),
		ttl:     ttl,
		nowTime: time.Now,
	}
}

// WithNowTime overrides the time source (primarily for testing).
func (r *InMemoryRepo) WithNowTime(now func() time.Time) *InMemoryRepo {
	r.nowTime = now
	return r
}

// Upsert creates or refreshes the session for a visit.
func (r *InMemoryRepo) Upsert(visitID string, sess *session.Session) error {
	if visitID == "" {
		return fmt.Errorf("visitID is required")
	}
	if sess == nil {
		return fmt.Errorf("session is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[visitID] = entry{sess: sess, expiresAt: r.nowTime().Add(r.ttl)}
	return nil
}

// Get retrieves the session for a visit. Expired entries are dropped.
func (r *InMemoryRepo) Get(visitID string) (*session.Session, error) {
	if visitID == "" {
		return nil, fmt.Errorf("visitID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[visitID]
	if !ok {
		return nil, interrors.ErrSessionNotFound
	}
	if e.expiresAt.Before(r.nowTime()) {
		delete(r.entries, visitID)
		return nil, interrors.ErrSessionNotFound
	}
	return e.sess, nil
}

// Delete removes the session for a visit.
func (r *InMemoryRepo) Delete(visitID string) error {
	if visitID == "" {
		return fmt.Errorf("visitID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, visitID)
	return nil
}
