package memory

import (
	"context"
	"sync"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/store"
)

// Store is the in-process booking store used when no Redis address is
// configured (local development). It is constructed and injected explicitly
// rather than living as package-level state, so tests get a fresh instance.
// No cross-process durability.
type Store struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewStore creates an empty in-memory booking store
func NewStore() *Store {
	return &Store{}
}

var _ store.Bookings = (*Store)(nil)

// Append stores one new booking.
func (s *Store) Append(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	return nil
}

// ListAll returns every stored booking in insertion order.
func (s *Store) ListAll(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// GetByID retrieves a booking by id.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

// UpdateFlags merges the flag update into the booking matching id.
// Unknown ids are a no-op.
func (s *Store) UpdateFlags(_ context.Context, id string, u domain.FlagUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			u.Apply(&s.bookings[i])
			return nil
		}
	}
	return nil
}

// UpdateEnrichment attaches generated content to the booking matching id.
// Unknown ids are a no-op.
func (s *Store) UpdateEnrichment(_ context.Context, id string, e domain.Enrichment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].AttachEnrichment(e)
			return nil
		}
	}
	return nil
}
