package models

import (
	"time"

	id "clearview/pkg/domain"
)

// Scope says whether a clearing event applies to one item only or to every
// item below the scoping item in the upload (GLOBAL, a.k.a. UPLOAD scope).
type Scope string

const (
	ScopeItem   Scope = "item"
	ScopeGlobal Scope = "global"
)

func (s Scope) IsValid() bool {
	return s == ScopeItem || s == ScopeGlobal
}

func (s Scope) String() string { return string(s) }

// DecisionType is the reviewer's conclusion for an item. Names are served by
// the decision-type catalog; the numeric values are the persisted keys.
type DecisionType int

const (
	TypeWorkInProgress DecisionType = 0
	TypeToBeDiscussed  DecisionType = 3
	TypeIrrelevant     DecisionType = 4
	TypeIdentified     DecisionType = 5
	TypeNonLicense     DecisionType = 6
	// TypeSameAsPrevious re-confirms the current decision. It refreshes the
	// author and date but never alters type, scope or license sets.
	TypeSameAsPrevious DecisionType = 7
)

// IsNoOp reports whether events of this type leave the accumulated decision untouched.
func (t DecisionType) IsNoOp() bool { return t == TypeSameAsPrevious }

// EventOrigin records how an event was produced.
type EventOrigin string

const (
	OriginUser EventOrigin = "user"
	// OriginBulk marks assertions applied in one action to many files sharing a pattern.
	OriginBulk EventOrigin = "bulk"
)

// ClearingEvent is one append-only audit record. Seq is the insertion order
// assigned by the event log and breaks timestamp ties.
type ClearingEvent struct {
	ID        id.EventID   `json:"id"`
	Seq       int64        `json:"seq"`
	ItemID    id.ItemID    `json:"item_id"`
	UserID    id.UserID    `json:"user_id"`
	UserName  string       `json:"user_name"`
	Timestamp time.Time    `json:"timestamp"`
	Scope     Scope        `json:"scope"`
	Type      DecisionType `json:"type"`
	Origin    EventOrigin  `json:"origin,omitempty"`
	Positive  []LicenseRef `json:"positive,omitempty"`
	Negative  []LicenseRef `json:"negative,omitempty"`
}

// Before reports whether e sorts before other under the (Timestamp, Seq) key.
func (e ClearingEvent) Before(other ClearingEvent) bool {
	if !e.Timestamp.Equal(other.Timestamp) {
		return e.Timestamp.Before(other.Timestamp)
	}
	return e.Seq < other.Seq
}

// EventHistory is the full event sequence visible to one item. Complete is
// false when the fetch was cut short; resolving such a history is refused.
type EventHistory struct {
	ItemID   id.ItemID
	Events   []ClearingEvent
	Complete bool
}

// CompleteHistory wraps events known to be the full history of item.
func CompleteHistory(item id.ItemID, events ...ClearingEvent) EventHistory {
	return EventHistory{ItemID: item, Events: events, Complete: true}
}

// ScopeFilter narrows which events participate in a resolution.
type ScopeFilter string

const (
	ScopeFilterAll    ScopeFilter = "all"
	ScopeFilterItem   ScopeFilter = "item"
	ScopeFilterGlobal ScopeFilter = "global"
)

// Admits reports whether an event with scope s passes the filter. The zero
// value admits everything.
func (f ScopeFilter) Admits(s Scope) bool {
	switch f {
	case ScopeFilterItem:
		return s == ScopeItem
	case ScopeFilterGlobal:
		return s == ScopeGlobal
	default:
		return true
	}
}

// ClearingDecision is the resolved state of an item, derived on read from its
// events. A license never appears in both Positive and Negative.
type ClearingDecision struct {
	ItemID    id.ItemID    `json:"item_id"`
	DateAdded time.Time    `json:"date_added"`
	UserID    id.UserID    `json:"user_id"`
	UserName  string       `json:"user_name"`
	Scope     Scope        `json:"scope"`
	Type      DecisionType `json:"type"`
	Origin    EventOrigin  `json:"origin,omitempty"`
	Positive  []LicenseRef `json:"positive"`
	Negative  []LicenseRef `json:"negative"`
}

// ItemDecision pairs an item with its resolved decision; Decision is nil when
// no event has ever been recorded for the item.
type ItemDecision struct {
	ItemID   id.ItemID         `json:"item_id"`
	Decision *ClearingDecision `json:"decision,omitempty"`
}

// Reviewer is the user recording clearing events.
type Reviewer struct {
	ID   id.UserID `json:"id"`
	Name string    `json:"name"`
}
