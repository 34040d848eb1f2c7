package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"clearview/internal/clearing/models"
	hlmodels "clearview/internal/highlight/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// ViewRequest selects what the clearing view shows. A zero ItemID opens the
// first file of UploadID. HighlightID narrows the highlights to one match.
type ViewRequest struct {
	UserID      id.UserID
	UploadID    id.UploadID
	ItemID      id.ItemID
	LicenseID   *id.LicenseID
	AgentID     *id.AgentID
	HighlightID *id.HighlightID
}

// ClearingView is everything a front end needs to render the clearing page of
// one file, independent of output format.
type ClearingView struct {
	UploadID   id.UploadID                   `json:"upload_id"`
	ItemID     id.ItemID                     `json:"item_id"`
	Permission id.Permission                 `json:"-"`
	Decision   *models.ClearingDecision      `json:"decision,omitempty"`
	Highlights []hlmodels.FlattenedHighlight `json:"highlights"`
	// BulkMatches is only filled for single files.
	BulkMatches []models.BulkMatch `json:"bulk_matches,omitempty"`
	// Licenses is the catalog offered for new assertions; writers only.
	Licenses []models.LicenseRef `json:"licenses,omitempty"`
	// AuditDenied is set for single files the user may read but not edit.
	AuditDenied bool                `json:"audit_denied"`
	History     *models.HistoryView `json:"history,omitempty"`
	// SelectedType preselects the most recent decision type; writers only.
	SelectedType  *models.DecisionType           `json:"selected_type,omitempty"`
	DecisionTypes map[models.DecisionType]string `json:"decision_types"`
	// Legend is shown when both an agent and a license are selected.
	Legend bool `json:"legend"`
}

// View assembles the clearing page. Folders and containers are redirected to
// the first file of their upload. Readers get the decision, highlights and
// bulk overview; the history and license catalog need write permission.
func (s *Service) View(ctx context.Context, req ViewRequest) (view *ClearingView, err error) {
	ctx, span := s.startSpan(ctx, "View", req.ItemID)
	defer func() { endSpan(span, err) }()

	item, b, err := s.resolveViewItem(ctx, req)
	if err != nil {
		return nil, err
	}
	perm, err := s.permission(ctx, req.UserID, b.UploadID)
	if err != nil {
		return nil, err
	}
	if !perm.CanRead() {
		return nil, dErrors.Newf(dErrors.CodeForbidden, "user %d may not view upload %d", req.UserID, b.UploadID)
	}

	view = &ClearingView{
		UploadID:      b.UploadID,
		ItemID:        item,
		Permission:    perm,
		DecisionTypes: s.types.Map(),
		Legend:        req.AgentID != nil && req.LicenseID != nil,
	}
	singleFile := !b.ContainsFiles()
	canWrite := perm.CanWrite()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hs, err := s.highlights(gctx, item, HighlightFilter{
			License:   req.LicenseID,
			Agent:     req.AgentID,
			Highlight: req.HighlightID,
		})
		view.Highlights = hs
		return err
	})
	g.Go(func() error {
		d, err := s.currentDecision(gctx, item, models.ScopeFilterAll)
		view.Decision = d
		return err
	})
	if singleFile {
		g.Go(func() error {
			matches, err := s.bulkOverview(gctx, item)
			view.BulkMatches = matches
			return err
		})
	}
	if canWrite {
		g.Go(func() error {
			history, err := s.history(gctx, item)
			if err != nil {
				return err
			}
			view.History = &history
			view.SelectedType = history.Selected
			return nil
		})
		if singleFile {
			g.Go(func() error {
				licenses, err := s.licenses.List(gctx)
				if err != nil {
					return translate(err, "failed to list licenses")
				}
				view.Licenses = licenses
				return nil
			})
		}
	} else if singleFile {
		view.AuditDenied = true
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// resolveViewItem picks the file the view opens: the requested item when it
// is a file, otherwise the first file of the upload.
func (s *Service) resolveViewItem(ctx context.Context, req ViewRequest) (id.ItemID, TreeBounds, error) {
	item := req.ItemID
	upload := req.UploadID
	if item != 0 {
		b, err := s.bounds(ctx, item)
		if err != nil {
			return 0, TreeBounds{}, err
		}
		if !b.ContainsFiles() {
			return item, b, nil
		}
		upload = b.UploadID
	}
	if upload == 0 {
		return 0, TreeBounds{}, dErrors.New(dErrors.CodeInvalidInput, "an upload or item is required")
	}

	first, err := s.tree.FirstFile(ctx, upload)
	if err != nil {
		return 0, TreeBounds{}, translate(err, "upload contains no files")
	}
	b, err := s.bounds(ctx, first)
	if err != nil {
		return 0, TreeBounds{}, err
	}
	return first, b, nil
}
