// Package service orchestrates the clearing view: it fetches events and spans
// from the collaborator ports, runs them through the resolver and merger,
// enforces upload permissions and appends new decisions.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"clearview/internal/clearing/adapters"
	"clearview/internal/clearing/decisiontypes"
	"clearview/internal/clearing/metrics"
	"clearview/internal/clearing/models"
	"clearview/internal/clearing/ports"
	"clearview/internal/highlight/merger"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
	"clearview/pkg/platform/sentinel"
)

// Type aliases for the collaborator ports so callers can wire the service
// without importing ports directly.
type (
	EventLog              = ports.EventLog
	EventSource           = ports.EventSource
	TreeRepository        = ports.TreeRepository
	TreeBounds            = ports.TreeBounds
	SpanSource            = ports.SpanSource
	LicenseCatalog        = ports.LicenseCatalog
	TypeCatalog           = ports.TypeCatalog
	ReferenceTextProvider = ports.ReferenceTextProvider
	PermissionChecker     = ports.PermissionChecker
	EventPublisher        = ports.EventPublisher
)

const tracerName = "clearview/internal/clearing/service"

type Service struct {
	log       EventLog
	events    EventSource
	tree      TreeRepository
	spans     SpanSource
	licenses  LicenseCatalog
	types     TypeCatalog
	perms     PermissionChecker
	refs      ReferenceTextProvider
	publisher EventPublisher
	merger    *merger.Merger
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	config    *Config
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithPublisher forwards every appended event to publisher.
func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithEventSource replaces the default tree-walking event source.
func WithEventSource(source EventSource) Option {
	return func(s *Service) {
		s.events = source
	}
}

// WithTypeCatalog replaces the built-in decision type names.
func WithTypeCatalog(types TypeCatalog) Option {
	return func(s *Service) {
		if types != nil {
			s.types = types
		}
	}
}

// WithReferenceTexts enables reference texts on single-agent highlights.
func WithReferenceTexts(refs ReferenceTextProvider) Option {
	return func(s *Service) {
		s.refs = refs
	}
}

// WithClock sets the timestamp source for appended events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(
	log EventLog,
	tree TreeRepository,
	spans SpanSource,
	licenses LicenseCatalog,
	perms PermissionChecker,
	opts ...Option,
) (*Service, error) {
	if log == nil {
		return nil, errors.New("event log is required")
	}
	if tree == nil {
		return nil, errors.New("tree repository is required")
	}
	if spans == nil {
		return nil, errors.New("span source is required")
	}
	if licenses == nil {
		return nil, errors.New("license catalog is required")
	}
	if perms == nil {
		return nil, errors.New("permission checker is required")
	}

	svc := &Service{
		log:      log,
		tree:     tree,
		spans:    spans,
		licenses: licenses,
		perms:    perms,
		types:    decisiontypes.Default(),
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer(tracerName),
		config:   DefaultConfig(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.events == nil {
		svc.events = adapters.NewEventSource(tree, log)
	}
	svc.merger = merger.New(svc.refs)
	return svc, nil
}

// startSpan opens a tracing span tagged with the item under work.
func (s *Service) startSpan(ctx context.Context, name string, item id.ItemID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "clearing."+name, trace.WithAttributes(attribute.Int64("item_id", int64(item))))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	}
	span.End()
}

// fetchHistory reads the events visible to item under the configured fetch
// timeout. Incomplete histories are returned as is; the resolver refuses them.
func (s *Service) fetchHistory(ctx context.Context, item id.ItemID) (models.EventHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	start := time.Now()
	history, err := s.events.FetchEvents(ctx, item, true)
	s.metrics.ObserveFetchLatency("events", time.Since(start))
	if err != nil {
		return models.EventHistory{}, translate(err, "failed to load clearing events")
	}
	if !history.Complete {
		s.metrics.IncrementIncomplete("events")
		s.logger.WarnContext(ctx, "clearing history fetch incomplete",
			"item_id", item,
			"events", len(history.Events),
		)
	}
	return history, nil
}

func (s *Service) bounds(ctx context.Context, item id.ItemID) (TreeBounds, error) {
	start := time.Now()
	b, err := s.tree.Bounds(ctx, item)
	s.metrics.ObserveFetchLatency("tree", time.Since(start))
	if err != nil {
		return TreeBounds{}, translate(err, "failed to locate item")
	}
	return b, nil
}

func (s *Service) permission(ctx context.Context, user id.UserID, upload id.UploadID) (id.Permission, error) {
	start := time.Now()
	perm, err := s.perms.UploadPermission(ctx, user, upload)
	s.metrics.ObserveFetchLatency("permission", time.Since(start))
	if err != nil {
		return id.PermNone, translate(err, "failed to check upload permission")
	}
	return perm, nil
}

// requireWrite returns the item's bounds when user may write to its upload.
func (s *Service) requireWrite(ctx context.Context, user id.UserID, item id.ItemID) (TreeBounds, error) {
	b, err := s.bounds(ctx, item)
	if err != nil {
		return TreeBounds{}, err
	}
	perm, err := s.permission(ctx, user, b.UploadID)
	if err != nil {
		return TreeBounds{}, err
	}
	if !perm.CanWrite() {
		return TreeBounds{}, dErrors.Newf(dErrors.CodeForbidden, "user %d may not edit upload %d", user, b.UploadID)
	}
	return b, nil
}

// translate maps store sentinels onto coded errors. Coded errors pass through.
func translate(err error, msg string) error {
	var coded *dErrors.Error
	switch {
	case errors.As(err, &coded):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, msg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, msg)
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodePreconditionFailed, msg)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
