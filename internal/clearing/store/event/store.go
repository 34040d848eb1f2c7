// Package event holds the append-only clearing event log implementations.
// Every backend assigns Seq monotonically per log, never rewrites an event and
// lists events in (Timestamp, Seq) order.
package event

import (
	"cmp"
	"slices"
	"time"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// Clock returns the current time; stores use it to stamp events that arrive
// without a timestamp.
type Clock func() time.Time

// prepare validates an incoming event and fills the fields owned by the log.
func prepare(e models.ClearingEvent, now Clock) (models.ClearingEvent, error) {
	if e.ItemID <= 0 {
		return e, dErrors.New(dErrors.CodeValidation, "event item id must be positive")
	}
	if !e.Scope.IsValid() {
		return e, dErrors.Newf(dErrors.CodeValidation, "invalid event scope %q", e.Scope)
	}
	if e.ID.IsNil() {
		e.ID = id.NewEventID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now()
	}
	if e.Origin == "" {
		e.Origin = models.OriginUser
	}
	e.Positive = slices.Clone(e.Positive)
	e.Negative = slices.Clone(e.Negative)
	return e, nil
}

func sortEvents(events []models.ClearingEvent) {
	slices.SortStableFunc(events, func(a, b models.ClearingEvent) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
}
