package resolver

import (
	"cmp"
	"slices"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
)

// BulkAssertions returns one decision per bulk event recorded on the item
// itself, oldest first, each carrying only the licenses that event asserted.
// Events inherited from ancestors and the cumulative state left by earlier
// events are not included. A license named in both sets of one event counts
// as negative.
//
// Errors: CodePreconditionFailed when history is marked incomplete.
func BulkAssertions(history models.EventHistory) ([]models.ClearingDecision, error) {
	events, err := admitted(history, models.ScopeFilterAll)
	if err != nil {
		return nil, err
	}
	var out []models.ClearingDecision
	for _, e := range events {
		if e.Origin != models.OriginBulk || e.ItemID != history.ItemID {
			continue
		}
		f := newFold(history.ItemID)
		f.apply(e)
		out = append(out, f.snapshot())
	}
	return out, nil
}

type bulkKey struct {
	license  id.LicenseID
	negative bool
}

// ExtractBulkMatches projects the decisions produced by bulk actions and
// groups their items by asserted license. Groups are ordered by license short
// name with additions before removals; item ids are sorted and unique.
func ExtractBulkMatches(decisions []models.ClearingDecision) []models.BulkMatch {
	groups := make(map[bulkKey]*models.BulkMatch)
	add := func(ref models.LicenseRef, negative bool, item id.ItemID) {
		k := bulkKey{license: ref.ID, negative: negative}
		g, ok := groups[k]
		if !ok {
			g = &models.BulkMatch{License: ref, Negative: negative}
			groups[k] = g
		}
		g.ItemIDs = append(g.ItemIDs, item)
	}

	for _, d := range decisions {
		if d.Origin != models.OriginBulk {
			continue
		}
		for _, ref := range d.Positive {
			add(ref, false, d.ItemID)
		}
		for _, ref := range d.Negative {
			add(ref, true, d.ItemID)
		}
	}

	out := make([]models.BulkMatch, 0, len(groups))
	for _, g := range groups {
		slices.Sort(g.ItemIDs)
		g.ItemIDs = slices.Compact(g.ItemIDs)
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b models.BulkMatch) int {
		if c := models.CompareLicenseRefs(a.License, b.License); c != 0 {
			return c
		}
		return cmp.Compare(boolRank(a.Negative), boolRank(b.Negative))
	})
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
