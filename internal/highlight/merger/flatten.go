// Package merger turns raw agent match spans into the highlight list of the
// clearing view.
//
// Flatten is pure domain logic: no I/O, no side effects. Merger adds the
// single-agent mode, which needs reference texts from a collaborator.
package merger

import (
	"cmp"
	"slices"

	"clearview/internal/highlight/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// Flatten sweeps over all span boundaries and emits one highlight per maximal
// sub-range covered by at least one span. Each output carries a label for
// every span overlapping it, ordered by span start, agent id, license id
// (non-license first) and end. Zero-length spans are dropped; adjacent spans
// stay separate.
//
// Errors: CodePreconditionFailed for an incomplete set, CodeInvalidSpan when
// any span has Start > End or a negative Start. No partial output is returned.
func Flatten(set models.SpanSet) ([]models.FlattenedHighlight, error) {
	spans, err := validSpans(set)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []models.FlattenedHighlight{}, nil
	}
	slices.SortStableFunc(spans, compareSpans)

	bounds := make([]int, 0, 2*len(spans))
	for _, s := range spans {
		bounds = append(bounds, s.Start, s.End)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	// active stays in label order: spans join in sorted order and leaving
	// preserves the relative order of the rest.
	var (
		out    []models.FlattenedHighlight
		active []models.HighlightSpan
		next   int
	)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		active = slices.DeleteFunc(active, func(s models.HighlightSpan) bool { return s.End <= lo })
		for next < len(spans) && spans[next].Start == lo {
			active = append(active, spans[next])
			next++
		}
		if len(active) == 0 {
			continue
		}
		out = append(out, models.FlattenedHighlight{Start: lo, End: hi, Labels: labelsOf(active)})
	}
	return out, nil
}

// validSpans checks every span and returns a copy without zero-length spans.
func validSpans(set models.SpanSet) ([]models.HighlightSpan, error) {
	if !set.Complete {
		return nil, dErrors.New(dErrors.CodePreconditionFailed, "highlight span set is incomplete")
	}
	out := make([]models.HighlightSpan, 0, len(set.Spans))
	for i, s := range set.Spans {
		if s.Start < 0 || s.Start > s.End {
			return nil, dErrors.Newf(dErrors.CodeInvalidSpan,
				"span %d of agent %d has invalid range [%d, %d)", i, s.AgentID, s.Start, s.End)
		}
		if s.IsEmpty() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func compareSpans(a, b models.HighlightSpan) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.AgentID, b.AgentID); c != 0 {
		return c
	}
	if c := compareLicense(a.LicenseID, b.LicenseID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// compareLicense orders non-license spans before license spans.
func compareLicense(a, b *id.LicenseID) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func labelsOf(spans []models.HighlightSpan) []models.Label {
	labels := make([]models.Label, len(spans))
	for i, s := range spans {
		labels[i] = labelOf(s)
	}
	return labels
}

func labelOf(s models.HighlightSpan) models.Label {
	return models.Label{AgentID: s.AgentID, LicenseID: s.LicenseID, Kind: s.Kind}
}
