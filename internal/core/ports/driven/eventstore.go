package driven

import (
	"context"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// EventStore persists compiled event versions in the local archive.
// Versions accumulate per coordinate; recency resolution is the caller's
// concern (see the compiler's Resolve), not the store's.
type EventStore interface {
	// Save stores one event version. Saving the same
	// (coordinate, createdAt) pair again replaces that version.
	Save(ctx context.Context, ev *domain.Event) error

	// Get retrieves an event by draft ID.
	Get(ctx context.Context, id string) (*domain.Event, error)

	// Versions returns every stored version of a coordinate,
	// oldest CreatedAt first.
	Versions(ctx context.Context, coord domain.Coordinate) ([]domain.Event, error)

	// List returns all stored events.
	List(ctx context.Context) ([]domain.Event, error)

	// Delete removes an event version by draft ID.
	Delete(ctx context.Context, id string) error
}
