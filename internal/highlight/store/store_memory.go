// Package store keeps agent highlight spans and the reference license texts
// shown next to single-agent matches.
package store

import (
	"context"
	"slices"
	"sync"

	"clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

// Spans is an in-memory span source.
type Spans struct {
	mu    sync.RWMutex
	spans map[id.ItemID][]models.HighlightSpan
}

func NewSpans() *Spans {
	return &Spans{spans: make(map[id.ItemID][]models.HighlightSpan)}
}

// Add records spans produced for item. Offsets are checked when merging, not here.
func (s *Spans) Add(item id.ItemID, spans ...models.HighlightSpan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spans[item] = append(s.spans[item], spans...)
}

// FetchHighlightSpans returns the spans of item, keeping only those of
// license and agent when set. A context that ends mid-fetch yields the
// spans gathered so far with Complete unset.
func (s *Spans) FetchHighlightSpans(ctx context.Context, item id.ItemID, license *id.LicenseID, agent *id.AgentID) (models.SpanSet, error) {
	s.mu.RLock()
	stored := slices.Clone(s.spans[item])
	s.mu.RUnlock()

	out := models.SpanSet{Complete: true}
	for _, sp := range stored {
		if ctx.Err() != nil {
			out.Complete = false
			return out, nil
		}
		if license != nil && (sp.LicenseID == nil || *sp.LicenseID != *license) {
			continue
		}
		if agent != nil && sp.AgentID != *agent {
			continue
		}
		if sp.LicenseID != nil {
			l := *sp.LicenseID
			sp.LicenseID = &l
		}
		out.Spans = append(out.Spans, sp)
	}
	return out, nil
}

type refKey struct {
	license id.LicenseID
	item    id.ItemID
	rng     models.Range
}

// ReferenceTexts serves reference license text. A text registered for an
// exact (license, item, range) wins over the license's full text; a license
// without any text yields "".
type ReferenceTexts struct {
	mu       sync.RWMutex
	matched  map[refKey]string
	licenses map[id.LicenseID]string
}

func NewReferenceTexts() *ReferenceTexts {
	return &ReferenceTexts{
		matched:  make(map[refKey]string),
		licenses: make(map[id.LicenseID]string),
	}
}

// SetLicenseText stores the full reference text of license.
func (r *ReferenceTexts) SetLicenseText(license id.LicenseID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.licenses[license] = text
}

// SetMatchText stores the reference excerpt matched by one span.
func (r *ReferenceTexts) SetMatchText(license id.LicenseID, item id.ItemID, rng models.Range, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matched[refKey{license: license, item: item, rng: rng}] = text
}

func (r *ReferenceTexts) ReferenceText(_ context.Context, license id.LicenseID, item id.ItemID, rng models.Range) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if text, ok := r.matched[refKey{license: license, item: item, rng: rng}]; ok {
		return text, nil
	}
	return r.licenses[license], nil
}
