package driving

import (
	"context"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// CompileRequest carries one document through validation and compilation.
type CompileRequest struct {
	// Text is the raw document text.
	Text string

	// AuthorKey is the publishing key stamped on emitted events.
	AuthorKey string

	// CreatedAt is the creation time in unix seconds. Zero means "now",
	// resolved by the service, so compiled events always carry a timestamp.
	CreatedAt int64

	// ParseLevel is the flattening depth (2-5). Zero means the configured
	// default.
	ParseLevel int

	// ExtraTags are spliced into the top-level index event.
	ExtraTags []domain.Tag

	// AttachPreamble stores preamble text as the index event content
	// instead of discarding it.
	AttachPreamble bool

	// Save persists the compiled events to the local archive.
	Save bool
}

// CompileResult is the outcome of a successful compilation.
type CompileResult struct {
	// Index is the top-level index event, nil for scattered notes.
	Index *domain.Event

	// Events are the branch and leaf events in document order.
	Events []domain.Event

	// Collisions lists duplicate coordinates from colliding sibling titles.
	Collisions []domain.Coordinate

	// Class is the document classification: "article", "scattered-notes",
	// or "index-card".
	Class string

	// Saved is the number of events persisted when Save was requested.
	Saved int
}

// Publisher drives the document-to-event pipeline: validate, compile,
// archive, and resolve stored versions.
type Publisher interface {
	// Validate runs the pre-flight structure check without compiling.
	Validate(ctx context.Context, text string) domain.ValidationResult

	// Compile validates and compiles a document, optionally persisting
	// the emitted events.
	Compile(ctx context.Context, req CompileRequest) (*CompileResult, error)

	// Get retrieves a stored event by draft ID.
	Get(ctx context.Context, id string) (*domain.Event, error)

	// List returns all stored event versions.
	List(ctx context.Context) ([]domain.Event, error)

	// Resolve returns the most recent stored version of a coordinate.
	Resolve(ctx context.Context, coord domain.Coordinate) (*domain.Event, error)

	// ResolveAll deduplicates the whole archive, returning one surviving
	// version per coordinate ordered by coordinate.
	ResolveAll(ctx context.Context) ([]domain.Event, error)
}
