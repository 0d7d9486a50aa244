package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/store"
)

// Store persists bookings in Redis, one key per record plus a set of all
// ids. Per-record keys make Append and UpdateFlags single-key writes, so
// two concurrent bookings can no longer clobber each other the way a
// serialize-the-whole-list collection does. Records carry no TTL: bookings
// are never expired by this subsystem.
type Store struct {
	client *redis.Client
	logger logger.Logger
}

// NewStore creates a new Redis-backed booking store
func NewStore(client *redis.Client, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log,
	}
}

var _ store.Bookings = (*Store)(nil)

// Append stores one new booking.
func (s *Store) Append(ctx context.Context, b domain.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, BookingKey(b.ID), data, 0)
	pipe.SAdd(ctx, KeyAllBookings, b.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by id.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	data, err := s.client.Get(ctx, BookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var b domain.Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking %s: %w", id, err)
	}
	return &b, nil
}

// ListAll returns every stored booking. A record that cannot be read or
// decoded is logged and skipped rather than failing the whole listing; only
// the id-set read itself can fail the call.
func (s *Store) ListAll(ctx context.Context) ([]domain.Booking, error) {
	ids, err := s.client.SMembers(ctx, KeyAllBookings).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list booking ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Booking{}, nil
	}

	bookings := make([]domain.Booking, 0, len(ids))
	for _, id := range ids {
		b, err := s.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			s.logger.Warn("skipping unreadable booking record",
				logger.String("booking_id", id),
				logger.Error(err))
			continue
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

// UpdateFlags merges the flag update into the booking matching id.
// Unknown ids are a no-op.
func (s *Store) UpdateFlags(ctx context.Context, id string, u domain.FlagUpdate) error {
	return s.mutate(ctx, id, func(b *domain.Booking) { u.Apply(b) })
}

// UpdateEnrichment attaches generated content to the booking matching id.
// Unknown ids are a no-op.
func (s *Store) UpdateEnrichment(ctx context.Context, id string, e domain.Enrichment) error {
	return s.mutate(ctx, id, func(b *domain.Booking) { b.AttachEnrichment(e) })
}

// mutate is a read-modify-write of a single booking key. Updates touch one
// record only, so a concurrent Append can never be lost.
func (s *Store) mutate(ctx context.Context, id string, fn func(*domain.Booking)) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	fn(b)

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}
	if err := s.client.Set(ctx, BookingKey(id), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}
