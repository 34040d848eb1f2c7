package models

import (
	id "clearview/pkg/domain"
)

// Kind classifies where a highlight span came from.
type Kind string

const (
	KindMatch     Kind = "match"
	KindBulk      Kind = "bulk"
	KindReference Kind = "reference"
)

// Range is a half-open [Start, End) offset range into an item's text.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HighlightSpan is one raw match produced by an agent run. LicenseID is nil
// for non-license highlights; HighlightID is zero when the producing record
// is unknown.
type HighlightSpan struct {
	Start       int            `json:"start"`
	End         int            `json:"end"`
	AgentID     id.AgentID     `json:"agent_id"`
	LicenseID   *id.LicenseID  `json:"license_id,omitempty"`
	HighlightID id.HighlightID `json:"highlight_id,omitempty"`
	Kind        Kind           `json:"kind"`
}

// Range returns the span's offsets.
func (s HighlightSpan) Range() Range { return Range{Start: s.Start, End: s.End} }

// IsEmpty reports whether the span covers no text.
func (s HighlightSpan) IsEmpty() bool { return s.Start == s.End }

// SpanSet is the full span set fetched for an item. Complete is false when
// the fetch was cut short; merging such a set is refused.
type SpanSet struct {
	Spans    []HighlightSpan
	Complete bool
}

// OnlyHighlight keeps the spans produced by record h. Complete is preserved.
func (s SpanSet) OnlyHighlight(h id.HighlightID) SpanSet {
	out := SpanSet{Complete: s.Complete}
	for _, span := range s.Spans {
		if span.HighlightID == h {
			out.Spans = append(out.Spans, span)
		}
	}
	return out
}

// CompleteSpans wraps spans known to be the full set.
func CompleteSpans(spans ...HighlightSpan) SpanSet {
	return SpanSet{Spans: spans, Complete: true}
}

// Label attributes an output range to one contributing span.
type Label struct {
	AgentID   id.AgentID    `json:"agent_id"`
	LicenseID *id.LicenseID `json:"license_id,omitempty"`
	Kind      Kind          `json:"kind"`
}

// FlattenedHighlight is one rendered range. ReferenceText is only filled in
// single-agent mode.
type FlattenedHighlight struct {
	Start         int     `json:"start"`
	End           int     `json:"end"`
	Labels        []Label `json:"labels"`
	ReferenceText string  `json:"reference_text,omitempty"`
}

// Markers wrap each highlighted range when rendering text.
type Markers struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// DefaultMarkers is the marker pair of the clearing view.
var DefaultMarkers = Markers{Open: "K", Close: "K "}

// Mode selects how spans are merged. A nil Agent means the aggregate view
// (flatten); a set Agent selects single-agent mode.
type Mode struct {
	Agent *id.AgentID
}

// Flatten is the aggregate mode.
func Flatten() Mode { return Mode{} }

// SingleAgent selects the spans of one agent without flattening.
func SingleAgent(agent id.AgentID) Mode { return Mode{Agent: &agent} }
