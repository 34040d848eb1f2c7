package service

import (
	"context"
	"time"

	"clearview/internal/highlight/merger"
	hlmodels "clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

// HighlightFilter narrows the spans of an item. Nil fields select everything.
type HighlightFilter struct {
	License *id.LicenseID
	Agent   *id.AgentID
	// Highlight keeps only the spans of one match or bulk record.
	Highlight *id.HighlightID
}

// Highlights merges the highlight spans of item. Without an agent the spans
// of all agents are flattened into non-overlapping ranges; with an agent only
// that agent's spans are returned, annotated with reference texts.
func (s *Service) Highlights(ctx context.Context, item id.ItemID, filter HighlightFilter) (out []hlmodels.FlattenedHighlight, err error) {
	ctx, span := s.startSpan(ctx, "Highlights", item)
	defer func() { endSpan(span, err) }()

	return s.highlights(ctx, item, filter)
}

func (s *Service) highlights(ctx context.Context, item id.ItemID, filter HighlightFilter) ([]hlmodels.FlattenedHighlight, error) {
	set, err := s.fetchSpans(ctx, item, filter)
	if err != nil {
		return nil, err
	}

	mode := hlmodels.Flatten()
	label := "flatten"
	if filter.Agent != nil {
		mode = hlmodels.SingleAgent(*filter.Agent)
		label = "single_agent"
	}
	out, err := s.merger.Merge(ctx, item, set, mode)
	if err != nil {
		return nil, translate(err, "failed to merge highlights")
	}
	s.metrics.IncrementMerge(label)
	return out, nil
}

func (s *Service) fetchSpans(ctx context.Context, item id.ItemID, filter HighlightFilter) (hlmodels.SpanSet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	start := time.Now()
	set, err := s.spans.FetchHighlightSpans(ctx, item, filter.License, filter.Agent)
	s.metrics.ObserveFetchLatency("spans", time.Since(start))
	if err != nil {
		return hlmodels.SpanSet{}, translate(err, "failed to load highlight spans")
	}
	if !set.Complete {
		s.metrics.IncrementIncomplete("spans")
		s.logger.WarnContext(ctx, "highlight span fetch incomplete", "item_id", item)
	}
	if filter.Highlight != nil {
		set = set.OnlyHighlight(*filter.Highlight)
	}
	return set, nil
}

// HighlightedText wraps the highlighted ranges of text with the configured markers.
func (s *Service) HighlightedText(ctx context.Context, item id.ItemID, text string, filter HighlightFilter) (rendered string, err error) {
	ctx, span := s.startSpan(ctx, "HighlightedText", item)
	defer func() { endSpan(span, err) }()

	highlights, err := s.highlights(ctx, item, filter)
	if err != nil {
		return "", err
	}
	return merger.Render(text, highlights, s.config.Markers)
}
