// Package adapters bridges the clearing ports onto each other.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"clearview/internal/clearing/models"
	"clearview/internal/clearing/ports"
	id "clearview/pkg/domain"
)

// EventSourceAdapter implements ports.EventSource on top of the upload tree
// and the event log. An item sees all of its own events plus the GLOBAL
// events recorded on any of its ancestors.
type EventSourceAdapter struct {
	tree ports.TreeRepository
	log  ports.EventLog
}

// NewEventSource creates an EventSource reading from log and walking tree.
func NewEventSource(tree ports.TreeRepository, log ports.EventLog) ports.EventSource {
	return &EventSourceAdapter{tree: tree, log: log}
}

// FetchEvents gathers the history visible to item. When ctx expires before
// the history has been read in full the result is marked incomplete rather
// than failing, so callers can refuse it explicitly.
func (a *EventSourceAdapter) FetchEvents(ctx context.Context, item id.ItemID, includeAncestors bool) (models.EventHistory, error) {
	history := models.EventHistory{ItemID: item}

	var ancestors []id.ItemID
	if includeAncestors {
		chain, err := a.tree.Ancestors(ctx, item)
		if err != nil {
			if isDeadline(ctx, err) {
				return history, nil
			}
			return history, fmt.Errorf("ancestors of item %d: %w", item, err)
		}
		ancestors = chain
	}

	items := append([]id.ItemID{item}, ancestors...)
	events, err := a.log.ListByItems(ctx, items)
	if err != nil {
		if isDeadline(ctx, err) {
			return history, nil
		}
		return history, fmt.Errorf("events of item %d: %w", item, err)
	}
	if ctx.Err() != nil {
		return history, nil
	}

	for _, e := range events {
		if e.ItemID == item || e.Scope == models.ScopeGlobal {
			history.Events = append(history.Events, e)
		}
	}
	history.Complete = true
	return history, nil
}

func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
