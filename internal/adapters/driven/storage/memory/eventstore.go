// Package memory provides in-memory driven adapters, used by tests and by
// the MCP server's dry-run mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driven"
)

// Ensure EventStore implements the interface.
var _ driven.EventStore = (*EventStore)(nil)

// EventStore is an in-memory implementation of driven.EventStore.
type EventStore struct {
	mu     sync.RWMutex
	events map[string]domain.Event // keyed by draft ID
	order  []string                // insertion order for stable listing
}

// NewEventStore creates a new in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[string]domain.Event),
	}
}

// Save stores one event version. Saving an event whose coordinate and
// CreatedAt match an existing version replaces that version.
func (s *EventStore) Save(_ context.Context, ev *domain.Event) error {
	if ev == nil || ev.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev := s.findVersionLocked(ev); prev != "" && prev != ev.ID {
		delete(s.events, prev)
		s.dropOrderLocked(prev)
	}
	if _, exists := s.events[ev.ID]; !exists {
		s.order = append(s.order, ev.ID)
	}
	s.events[ev.ID] = *ev
	return nil
}

// findVersionLocked returns the ID of a stored event sharing the given
// event's coordinate and CreatedAt, or "" when none exists.
func (s *EventStore) findVersionLocked(ev *domain.Event) string {
	coord, ok := domain.CoordinateOf(ev)
	if !ok {
		return ""
	}
	for id := range s.events {
		stored := s.events[id]
		storedCoord, ok := domain.CoordinateOf(&stored)
		if ok && storedCoord == coord && stored.CreatedAt == ev.CreatedAt {
			return id
		}
	}
	return ""
}

func (s *EventStore) dropOrderLocked(id string) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Get retrieves an event by draft ID.
func (s *EventStore) Get(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ev, nil
}

// Versions returns every stored version of a coordinate, oldest first.
func (s *EventStore) Versions(_ context.Context, coord domain.Coordinate) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var versions []domain.Event
	for _, id := range s.order {
		ev := s.events[id]
		evCoord, ok := domain.CoordinateOf(&ev)
		if ok && evCoord == coord {
			versions = append(versions, ev)
		}
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].CreatedAt < versions[j].CreatedAt
	})
	return versions, nil
}

// List returns all stored events in insertion order.
func (s *EventStore) List(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.events[id])
	}
	return out, nil
}

// Delete removes an event version by draft ID.
func (s *EventStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.events, id)
	s.dropOrderLocked(id)
	return nil
}
