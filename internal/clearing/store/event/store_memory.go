package event

import (
	"context"
	"slices"
	"sync"
	"time"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	"clearview/pkg/platform/sentinel"
)

// InMemory is an append-only event log guarded by a RWMutex. Readers get
// copies, so a concurrent Append is either fully visible or not at all.
type InMemory struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[id.EventID]struct{}
	events map[id.ItemID][]models.ClearingEvent
	clock  Clock
}

// InMemoryOption configures an InMemory log.
type InMemoryOption func(*InMemory)

// WithMemoryClock sets the clock used for events without a timestamp.
func WithMemoryClock(clock Clock) InMemoryOption {
	return func(s *InMemory) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewInMemory(opts ...InMemoryOption) *InMemory {
	s := &InMemory{
		byID:   make(map[id.EventID]struct{}),
		events: make(map[id.ItemID][]models.ClearingEvent),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemory) Append(_ context.Context, e models.ClearingEvent) (models.ClearingEvent, error) {
	e, err := prepare(e, s.clock)
	if err != nil {
		return models.ClearingEvent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byID[e.ID]; dup {
		return models.ClearingEvent{}, sentinel.ErrConflict
	}
	s.seq++
	e.Seq = s.seq
	s.byID[e.ID] = struct{}{}
	s.events[e.ItemID] = append(s.events[e.ItemID], e)
	return e, nil
}

func (s *InMemory) ListByItems(_ context.Context, items []id.ItemID) ([]models.ClearingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ClearingEvent
	for _, item := range slices.Compact(slices.Sorted(slices.Values(items))) {
		for _, e := range s.events[item] {
			e.Positive = slices.Clone(e.Positive)
			e.Negative = slices.Clone(e.Negative)
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out, nil
}

// Len returns the number of stored events.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
