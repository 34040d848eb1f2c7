// Package ports defines the collaborator interfaces of the clearing module.
// Implementations live under store/, adapters/ and publisher/; tests use the
// gomock doubles in mocks/.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"clearview/internal/clearing/models"
	hlmodels "clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

// EventLog is the append-only clearing event store.
type EventLog interface {
	// Append stores event, assigning ID (when nil) and Seq. Earlier events are never touched.
	Append(ctx context.Context, event models.ClearingEvent) (models.ClearingEvent, error)

	// ListByItems returns every event recorded on the given items in (Timestamp, Seq) order.
	ListByItems(ctx context.Context, items []id.ItemID) ([]models.ClearingEvent, error)
}

// EventSource returns the events visible to an item: its own events and,
// when includeAncestors is set, the GLOBAL events of its ancestors.
type EventSource interface {
	FetchEvents(ctx context.Context, item id.ItemID, includeAncestors bool) (models.EventHistory, error)
}

// TreeBounds locates an item in the nested-set upload tree. An item contains
// every item whose Left lies strictly between its Left and Right.
type TreeBounds struct {
	ItemID   id.ItemID
	UploadID id.UploadID
	Left     int64
	Right    int64
}

// ContainsFiles reports whether the bounds enclose any other item.
func (b TreeBounds) ContainsFiles() bool { return b.Right-b.Left > 1 }

// TreeRepository navigates an upload's file tree.
type TreeRepository interface {
	Bounds(ctx context.Context, item id.ItemID) (TreeBounds, error)
	// Ancestors returns the chain of enclosing items, nearest first.
	Ancestors(ctx context.Context, item id.ItemID) ([]id.ItemID, error)
	// ContainedFiles returns the file (leaf) items inside bounds, ordered by id.
	ContainedFiles(ctx context.Context, bounds TreeBounds) ([]id.ItemID, error)
	// FirstFile returns the first file of the upload in tree order.
	FirstFile(ctx context.Context, upload id.UploadID) (id.ItemID, error)
}

// SpanSource returns the highlight spans of an item, optionally narrowed to
// one license and/or agent.
type SpanSource interface {
	FetchHighlightSpans(ctx context.Context, item id.ItemID, license *id.LicenseID, agent *id.AgentID) (hlmodels.SpanSet, error)
}

// LicenseCatalog resolves license ids for display.
type LicenseCatalog interface {
	LookupLicense(ctx context.Context, license id.LicenseID) (models.LicenseRef, error)
	List(ctx context.Context) ([]models.LicenseRef, error)
}

// TypeCatalog maps decision types to names.
type TypeCatalog interface {
	TypeName(t models.DecisionType) (string, error)
	TypeByName(name string) (models.DecisionType, error)
	Map() map[models.DecisionType]string
}

// ReferenceTextProvider supplies reference license texts for single-agent highlights.
type ReferenceTextProvider interface {
	ReferenceText(ctx context.Context, license id.LicenseID, item id.ItemID, r hlmodels.Range) (string, error)
}

// PermissionChecker is the access-control check for uploads.
type PermissionChecker interface {
	UploadPermission(ctx context.Context, user id.UserID, upload id.UploadID) (id.Permission, error)
}

// EventPublisher forwards appended clearing events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ClearingEvent) error
}
