package compiler

import (
	"sort"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// Resolve groups addressable events by coordinate and keeps the most recent
// version of each. Events outside the addressable kind range are skipped.
//
// Resolution has no ordering requirement on its input beyond "all versions
// currently known": it is safe to call repeatedly as more versions arrive,
// and re-resolving an already-resolved set returns the same set.
func Resolve(events []domain.Event) map[domain.Coordinate]domain.Event {
	resolved := make(map[domain.Coordinate]domain.Event, len(events))

	for _, ev := range events {
		coord, ok := domain.CoordinateOf(&ev)
		if !ok {
			continue
		}
		current, exists := resolved[coord]
		if !exists || supersedes(&ev, &current) {
			resolved[coord] = ev
		}
	}

	return resolved
}

// ResolveOrdered resolves and returns the surviving versions sorted by
// coordinate, for deterministic listing output.
func ResolveOrdered(events []domain.Event) []domain.Event {
	resolved := Resolve(events)

	coords := make([]domain.Coordinate, 0, len(resolved))
	for coord := range resolved {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })

	out := make([]domain.Event, 0, len(coords))
	for _, coord := range coords {
		out = append(out, resolved[coord])
	}
	return out
}

// supersedes reports whether candidate replaces incumbent: the greater
// CreatedAt wins, an unset (zero) CreatedAt loses to a set one, and when
// both are unset or both equal, the later-encountered candidate wins.
// The tie rule keeps resolution stable, not random, across iterations.
func supersedes(candidate, incumbent *domain.Event) bool {
	if candidate.CreatedAt == 0 || incumbent.CreatedAt == 0 {
		return incumbent.CreatedAt == 0
	}
	return candidate.CreatedAt >= incumbent.CreatedAt
}
