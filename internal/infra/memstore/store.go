// Package memstore is an in-memory ports.UserStore.
package memstore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// Store keeps registrations in memory, keyed by identifier. Passwords are
// stored as bcrypt hashes.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Registration
	order   []string

	cost  int
	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithCost(cost int) Option {
	return func(s *Store) { s.cost = cost }
}

func New(opts ...Option) *Store {
	s := &Store{
		records: map[string]domain.Registration{},
		cost:    bcrypt.DefaultCost,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
		log:     logger.For("memstore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.UserStore = (*Store)(nil)

// Save records email/password. Saving an already known identifier replaces
// the stored password and keeps the original ID.
func (s *Store) Save(email, password string) {
	id := domain.IdentifierFor(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		// bcrypt only fails for passwords over 72 bytes; keep the record
		// without a hash so Verify rejects every password.
		s.log.Warn("memstore.hash_failed", "identifier", id, "error", err)
		hash = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		rec = domain.Registration{
			ID:        s.newID(),
			Email:     id,
			CreatedAt: s.now().UTC(),
		}
		s.order = append(s.order, id)
	}
	rec.PasswordHash = hash
	s.records[id] = rec

	s.log.Debug("memstore.saved", "identifier", id, "id", rec.ID, "replaced", exists)
}

// Get returns the record stored under the identifier derived from email.
func (s *Store) Get(email string) (domain.Registration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[domain.IdentifierFor(email)]
	return rec, ok
}

// Verify reports whether password matches the stored hash for email.
func (s *Store) Verify(email, password string) bool {
	rec, ok := s.Get(email)
	if !ok || len(rec.PasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(password)) == nil
}

// List returns records in insertion order.
func (s *Store) List() []domain.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Registration, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
