// Package resolver folds the append-only clearing event log of an item into
// its current ClearingDecision.
//
// Everything here is pure: no I/O, no logging, no shared state. Callers hand
// in a complete history and get a freshly computed decision back, so
// resolution can run concurrently and be repeated at will.
package resolver

import (
	"cmp"
	"slices"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// Resolve computes the effective decision from history. It returns nil, nil
// when no event passes the filter (no decision has been made yet).
//
// Errors: CodePreconditionFailed when history is marked incomplete.
func Resolve(history models.EventHistory, filter models.ScopeFilter) (*models.ClearingDecision, error) {
	events, err := admitted(history, filter)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	f := newFold(history.ItemID)
	for _, e := range events {
		f.apply(e)
	}
	d := f.snapshot()
	return &d, nil
}

// ResolveHistory returns the decision as it stood after each admitted event,
// newest first. The first row always equals Resolve over the same input.
func ResolveHistory(history models.EventHistory, filter models.ScopeFilter) ([]models.ClearingDecision, error) {
	events, err := admitted(history, filter)
	if err != nil {
		return nil, err
	}

	f := newFold(history.ItemID)
	out := make([]models.ClearingDecision, len(events))
	for i, e := range events {
		f.apply(e)
		out[len(events)-1-i] = f.snapshot()
	}
	return out, nil
}

// admitted returns a private, (Timestamp, Seq)-ordered copy of the events
// passing filter.
func admitted(history models.EventHistory, filter models.ScopeFilter) ([]models.ClearingEvent, error) {
	if !history.Complete {
		return nil, dErrors.New(dErrors.CodePreconditionFailed, "event history is incomplete")
	}
	events := make([]models.ClearingEvent, 0, len(history.Events))
	for _, e := range history.Events {
		if filter.Admits(e.Scope) {
			events = append(events, e)
		}
	}
	slices.SortStableFunc(events, func(a, b models.ClearingEvent) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return events, nil
}

// assertion is the latest event that put a license into one of the sets.
type assertion struct {
	ref   models.LicenseRef
	event models.ClearingEvent
}

type fold struct {
	decision models.ClearingDecision
	seeded   bool
	positive map[id.LicenseID]assertion
	negative map[id.LicenseID]assertion
}

func newFold(item id.ItemID) *fold {
	return &fold{
		decision: models.ClearingDecision{ItemID: item},
		positive: make(map[id.LicenseID]assertion),
		negative: make(map[id.LicenseID]assertion),
	}
}

func (f *fold) apply(e models.ClearingEvent) {
	f.decision.DateAdded = e.Timestamp
	f.decision.UserID = e.UserID
	f.decision.UserName = e.UserName

	// The first event seeds type and scope even when it is a no-op; later
	// no-ops only refresh author and date.
	if !f.seeded || !e.Type.IsNoOp() {
		f.decision.Type = e.Type
		f.decision.Scope = e.Scope
		f.decision.Origin = e.Origin
		f.seeded = true
	}
	if e.Type.IsNoOp() {
		return
	}

	for _, ref := range e.Positive {
		recordAssertion(f.positive, f.negative, ref, e)
	}
	// Negatives are applied after positives, so a license named in both sets
	// of one event ends up negative.
	for _, ref := range e.Negative {
		recordAssertion(f.negative, f.positive, ref, e)
	}
}

// recordAssertion records ref in into and drops it from opposite when the opposite
// assertion is not newer than e.
func recordAssertion(into, opposite map[id.LicenseID]assertion, ref models.LicenseRef, e models.ClearingEvent) {
	into[ref.ID] = assertion{ref: ref, event: e}
	if prev, ok := opposite[ref.ID]; ok && !e.Before(prev.event) {
		delete(opposite, ref.ID)
	}
}

func (f *fold) snapshot() models.ClearingDecision {
	d := f.decision
	d.Positive = collect(f.positive)
	d.Negative = collect(f.negative)
	return d
}

func collect(set map[id.LicenseID]assertion) []models.LicenseRef {
	refs := make([]models.LicenseRef, 0, len(set))
	for _, a := range set {
		refs = append(refs, a.ref)
	}
	slices.SortFunc(refs, models.CompareLicenseRefs)
	return refs
}
