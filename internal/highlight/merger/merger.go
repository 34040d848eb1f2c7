package merger

import (
	"cmp"
	"context"
	"slices"

	"clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

// ReferenceTextProvider supplies the reference license text matched by a span.
type ReferenceTextProvider interface {
	ReferenceText(ctx context.Context, license id.LicenseID, item id.ItemID, r models.Range) (string, error)
}

// Merger selects between the flattened aggregate view and the per-agent view.
type Merger struct {
	refs ReferenceTextProvider
}

// New constructs a Merger. refs may be nil, in which case single-agent
// highlights carry no reference text.
func New(refs ReferenceTextProvider) *Merger {
	return &Merger{refs: refs}
}

// Merge flattens spans when mode has no agent. With an agent selected it
// returns that agent's spans ordered by start (overlaps allowed), each
// annotated with its reference text.
func (m *Merger) Merge(ctx context.Context, item id.ItemID, set models.SpanSet, mode models.Mode) ([]models.FlattenedHighlight, error) {
	if mode.Agent == nil {
		return Flatten(set)
	}

	spans, err := validSpans(set)
	if err != nil {
		return nil, err
	}
	agent := *mode.Agent
	spans = slices.DeleteFunc(spans, func(s models.HighlightSpan) bool { return s.AgentID != agent })
	slices.SortStableFunc(spans, func(a, b models.HighlightSpan) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	out := make([]models.FlattenedHighlight, 0, len(spans))
	for _, s := range spans {
		h := models.FlattenedHighlight{Start: s.Start, End: s.End, Labels: []models.Label{labelOf(s)}}
		if s.LicenseID != nil && m.refs != nil {
			text, err := m.refs.ReferenceText(ctx, *s.LicenseID, item, s.Range())
			if err != nil {
				return nil, err
			}
			h.ReferenceText = text
		}
		out = append(out, h)
	}
	return out, nil
}
