package service

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"clearview/internal/clearing/models"
	"clearview/internal/clearing/resolver"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// CurrentDecision resolves the decision of item from its own events and the
// GLOBAL events of its ancestors. A nil decision means nothing was recorded.
func (s *Service) CurrentDecision(ctx context.Context, item id.ItemID, filter models.ScopeFilter) (decision *models.ClearingDecision, err error) {
	ctx, span := s.startSpan(ctx, "CurrentDecision", item)
	defer func() { endSpan(span, err) }()

	return s.currentDecision(ctx, item, filter)
}

func (s *Service) currentDecision(ctx context.Context, item id.ItemID, filter models.ScopeFilter) (*models.ClearingDecision, error) {
	history, err := s.fetchHistory(ctx, item)
	if err != nil {
		s.metrics.IncrementResolution(filterLabel(filter), "error")
		return nil, err
	}
	decision, err := resolver.Resolve(history, filter)
	if err != nil {
		s.metrics.IncrementResolution(filterLabel(filter), "error")
		return nil, err
	}
	if decision == nil {
		s.metrics.IncrementResolution(filterLabel(filter), "none")
		return nil, nil
	}
	s.metrics.IncrementResolution(filterLabel(filter), "decided")
	return decision, nil
}

// FolderDecisions resolves every file below item, or item itself when it is
// a file. Files are resolved in parallel; the first failure cancels the rest.
func (s *Service) FolderDecisions(ctx context.Context, item id.ItemID) (out []models.ItemDecision, err error) {
	ctx, span := s.startSpan(ctx, "FolderDecisions", item)
	defer func() { endSpan(span, err) }()

	b, err := s.bounds(ctx, item)
	if err != nil {
		return nil, err
	}
	files := []id.ItemID{item}
	if b.ContainsFiles() {
		files, err = s.tree.ContainedFiles(ctx, b)
		if err != nil {
			return nil, translate(err, "failed to list folder files")
		}
		files = slices.Compact(slices.Sorted(slices.Values(files)))
	}

	out = make([]models.ItemDecision, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if s.config.FolderConcurrency > 0 {
		g.SetLimit(s.config.FolderConcurrency)
	}
	for i, file := range files {
		g.Go(func() error {
			decision, err := s.currentDecision(gctx, file, models.ScopeFilterAll)
			if err != nil {
				return err
			}
			out[i] = models.ItemDecision{ItemID: file, Decision: decision}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// History returns the formatted decision history of item, newest first.
// Only users with write permission on the upload may see it.
func (s *Service) History(ctx context.Context, user id.UserID, item id.ItemID) (view models.HistoryView, err error) {
	ctx, span := s.startSpan(ctx, "History", item)
	defer func() { endSpan(span, err) }()

	if _, err := s.requireWrite(ctx, user, item); err != nil {
		return models.HistoryView{}, err
	}
	return s.history(ctx, item)
}

func (s *Service) history(ctx context.Context, item id.ItemID) (models.HistoryView, error) {
	decisions, err := s.decisionTrail(ctx, item)
	if err != nil {
		return models.HistoryView{}, err
	}
	return resolver.FormatHistory(decisions, s.types)
}

// decisionTrail resolves the cumulative decision after each visible event.
func (s *Service) decisionTrail(ctx context.Context, item id.ItemID) ([]models.ClearingDecision, error) {
	history, err := s.fetchHistory(ctx, item)
	if err != nil {
		return nil, err
	}
	return resolver.ResolveHistory(history, models.ScopeFilterAll)
}

// BulkOverview lists the licenses bulk actions asserted on a single file.
func (s *Service) BulkOverview(ctx context.Context, item id.ItemID) (matches []models.BulkMatch, err error) {
	ctx, span := s.startSpan(ctx, "BulkOverview", item)
	defer func() { endSpan(span, err) }()

	b, err := s.bounds(ctx, item)
	if err != nil {
		return nil, err
	}
	if b.ContainsFiles() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "item %d is not a single file", item)
	}
	return s.bulkOverview(ctx, item)
}

func (s *Service) bulkOverview(ctx context.Context, item id.ItemID) ([]models.BulkMatch, error) {
	history, err := s.fetchHistory(ctx, item)
	if err != nil {
		return nil, err
	}
	assertions, err := resolver.BulkAssertions(history)
	if err != nil {
		return nil, err
	}
	return resolver.ExtractBulkMatches(assertions), nil
}

// MakeDecisionFromLastEvents concludes item with decision type t, keeping the
// currently resolved license sets. global selects GLOBAL scope, which also
// applies the decision to every item below item. The stored event is
// published when a publisher is configured; a publish failure is logged and
// counted but does not undo the append.
func (s *Service) MakeDecisionFromLastEvents(
	ctx context.Context,
	reviewer models.Reviewer,
	item id.ItemID,
	t models.DecisionType,
	global bool,
) (stored models.ClearingEvent, err error) {
	ctx, span := s.startSpan(ctx, "MakeDecisionFromLastEvents", item)
	defer func() { endSpan(span, err) }()

	if _, err := s.requireWrite(ctx, reviewer.ID, item); err != nil {
		return models.ClearingEvent{}, err
	}
	if _, err := s.types.TypeName(t); err != nil {
		return models.ClearingEvent{}, err
	}

	current, err := s.currentDecision(ctx, item, models.ScopeFilterAll)
	if err != nil {
		return models.ClearingEvent{}, err
	}

	e := models.ClearingEvent{
		ItemID:   item,
		UserID:   reviewer.ID,
		UserName: reviewer.Name,
		Scope:    models.ScopeItem,
		Type:     t,
		Origin:   models.OriginUser,
	}
	if global {
		e.Scope = models.ScopeGlobal
	}
	if current != nil {
		e.Positive = current.Positive
		e.Negative = current.Negative
	}
	return s.appendEvent(ctx, e)
}

// AssertionRequest records licenses found (Positive) or ruled out (Negative)
// on an item.
type AssertionRequest struct {
	Reviewer models.Reviewer
	ItemID   id.ItemID
	Type     models.DecisionType
	Global   bool
	Bulk     bool
	Positive []id.LicenseID
	Negative []id.LicenseID
}

// RecordAssertions appends one event asserting the requested licenses. Every
// license id must be in the catalog.
func (s *Service) RecordAssertions(ctx context.Context, req AssertionRequest) (stored models.ClearingEvent, err error) {
	ctx, span := s.startSpan(ctx, "RecordAssertions", req.ItemID)
	defer func() { endSpan(span, err) }()

	if len(req.Positive) == 0 && len(req.Negative) == 0 && !req.Type.IsNoOp() {
		return models.ClearingEvent{}, dErrors.New(dErrors.CodeValidation, "at least one license must be asserted")
	}
	if _, err := s.requireWrite(ctx, req.Reviewer.ID, req.ItemID); err != nil {
		return models.ClearingEvent{}, err
	}
	if _, err := s.types.TypeName(req.Type); err != nil {
		return models.ClearingEvent{}, err
	}

	positive, err := s.lookupLicenses(ctx, req.Positive)
	if err != nil {
		return models.ClearingEvent{}, err
	}
	negative, err := s.lookupLicenses(ctx, req.Negative)
	if err != nil {
		return models.ClearingEvent{}, err
	}

	e := models.ClearingEvent{
		ItemID:   req.ItemID,
		UserID:   req.Reviewer.ID,
		UserName: req.Reviewer.Name,
		Scope:    models.ScopeItem,
		Type:     req.Type,
		Origin:   models.OriginUser,
		Positive: positive,
		Negative: negative,
	}
	if req.Global {
		e.Scope = models.ScopeGlobal
	}
	if req.Bulk {
		e.Origin = models.OriginBulk
	}
	return s.appendEvent(ctx, e)
}

func (s *Service) lookupLicenses(ctx context.Context, ids []id.LicenseID) ([]models.LicenseRef, error) {
	var out []models.LicenseRef
	for _, lid := range slices.Compact(slices.Sorted(slices.Values(ids))) {
		ref, err := s.licenses.LookupLicense(ctx, lid)
		if err != nil {
			return nil, translate(err, "failed to look up license")
		}
		out = append(out, ref)
	}
	return out, nil
}

func (s *Service) appendEvent(ctx context.Context, e models.ClearingEvent) (models.ClearingEvent, error) {
	e.Timestamp = s.now()
	stored, err := s.log.Append(ctx, e)
	if err != nil {
		return models.ClearingEvent{}, translate(err, "failed to append clearing event")
	}

	typeName, _ := s.types.TypeName(stored.Type)
	s.metrics.IncrementDecisionAppended(typeName, stored.Scope.String())
	s.logger.InfoContext(ctx, "clearing event appended",
		"event_id", stored.ID,
		"item_id", stored.ItemID,
		"user_id", stored.UserID,
		"type", typeName,
		"scope", stored.Scope,
		"origin", stored.Origin,
	)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, stored); err != nil {
			s.metrics.IncrementPublishFailure()
			s.logger.ErrorContext(ctx, "clearing event not published",
				"event_id", stored.ID,
				"error", err,
			)
		}
	}
	return stored, nil
}

func filterLabel(f models.ScopeFilter) string {
	if f == "" {
		return string(models.ScopeFilterAll)
	}
	return string(f)
}
