package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is the (kind, authorKey, slug) triple identifying an
// addressable event's logical identity across versions. Two events sharing
// a coordinate are different versions of the same logical event.
type Coordinate struct {
	Kind      int
	AuthorKey string
	Slug      string
}

// String renders the coordinate in "kind:authorKey:slug" reference form,
// the format used by "a" child-reference tags.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%s:%s", c.Kind, c.AuthorKey, c.Slug)
}

// Less orders coordinates by kind, then author key, then slug.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Kind != other.Kind {
		return c.Kind < other.Kind
	}
	if c.AuthorKey != other.AuthorKey {
		return c.AuthorKey < other.AuthorKey
	}
	return c.Slug < other.Slug
}

// ParseCoordinate parses a "kind:authorKey:slug" reference string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("parsing coordinate %q: %w", s, ErrInvalidInput)
	}
	kind, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("parsing coordinate kind %q: %w", parts[0], ErrInvalidInput)
	}
	return Coordinate{Kind: kind, AuthorKey: parts[1], Slug: parts[2]}, nil
}

// CoordinateOf returns the coordinate of an addressable event.
// It is defined only for kinds in the addressable range; for any other
// kind it returns false and the event is never subject to deduplication.
func CoordinateOf(e *Event) (Coordinate, bool) {
	if e == nil || e.Kind < addressableKindMin || e.Kind > addressableKindMax {
		return Coordinate{}, false
	}
	return Coordinate{Kind: e.Kind, AuthorKey: e.AuthorKey, Slug: e.Slug()}, true
}
