// Package tree holds the nested-set upload tree used to navigate from an item
// to its ancestors and contained files.
package tree

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"clearview/internal/clearing/ports"
	id "clearview/pkg/domain"
	"clearview/pkg/platform/sentinel"
)

// InMemory is a nested-set tree keyed by item.
type InMemory struct {
	mu    sync.RWMutex
	nodes map[id.ItemID]ports.TreeBounds
}

func NewInMemory() *InMemory {
	return &InMemory{nodes: make(map[id.ItemID]ports.TreeBounds)}
}

// Insert records bounds for an item. Left must be smaller than Right and the
// interval must not straddle an existing node of the same upload.
func (s *InMemory) Insert(b ports.TreeBounds) error {
	if b.ItemID <= 0 || b.UploadID <= 0 || b.Left >= b.Right {
		return fmt.Errorf("insert item %d: %w", b.ItemID, sentinel.ErrInvalidState)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nodes {
		if n.UploadID != b.UploadID || n.ItemID == b.ItemID {
			continue
		}
		if straddles(n, b) || straddles(b, n) {
			return fmt.Errorf("item %d overlaps item %d: %w", b.ItemID, n.ItemID, sentinel.ErrInvalidState)
		}
	}
	s.nodes[b.ItemID] = b
	return nil
}

func straddles(a, b ports.TreeBounds) bool {
	return a.Left < b.Left && b.Left < a.Right && a.Right < b.Right
}

func (s *InMemory) Bounds(_ context.Context, item id.ItemID) (ports.TreeBounds, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.nodes[item]
	if !ok {
		return ports.TreeBounds{}, fmt.Errorf("item %d: %w", item, sentinel.ErrNotFound)
	}
	return b, nil
}

func (s *InMemory) Ancestors(_ context.Context, item id.ItemID) ([]id.ItemID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.nodes[item]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", item, sentinel.ErrNotFound)
	}
	var chain []ports.TreeBounds
	for _, n := range s.nodes {
		if n.UploadID == b.UploadID && n.Left < b.Left && b.Right < n.Right {
			chain = append(chain, n)
		}
	}
	// nearest ancestor has the largest Left
	slices.SortFunc(chain, func(x, y ports.TreeBounds) int { return cmp.Compare(y.Left, x.Left) })
	out := make([]id.ItemID, len(chain))
	for i, n := range chain {
		out[i] = n.ItemID
	}
	return out, nil
}

func (s *InMemory) ContainedFiles(_ context.Context, bounds ports.TreeBounds) ([]id.ItemID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []id.ItemID
	for _, n := range s.nodes {
		if n.UploadID == bounds.UploadID && bounds.Left < n.Left && n.Left < bounds.Right && !n.ContainsFiles() {
			out = append(out, n.ItemID)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (s *InMemory) FirstFile(_ context.Context, upload id.UploadID) (id.ItemID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		first ports.TreeBounds
		found bool
	)
	for _, n := range s.nodes {
		if n.UploadID != upload || n.ContainsFiles() {
			continue
		}
		if !found || n.Left < first.Left {
			first, found = n, true
		}
	}
	if !found {
		return 0, fmt.Errorf("upload %d has no files: %w", upload, sentinel.ErrNotFound)
	}
	return first.ItemID, nil
}
