package store

import (
	"context"
	"errors"

	"github.com/CourageAllien/revshare/internal/domain"
)

// ErrNotFound is returned by GetByID when no booking matches the id.
// UpdateFlags deliberately does NOT return it: a flag update for an unknown
// id is a no-op by contract.
var ErrNotFound = errors.New("booking not found")

// Bookings is the durable record store for bookings. Records are appended
// and flag-updated, never deleted.
type Bookings interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Append(ctx context.Context, b domain.Booking) error
	UpdateFlags(ctx context.Context, id string, u domain.FlagUpdate) error
	UpdateEnrichment(ctx context.Context, id string, e domain.Enrichment) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}
