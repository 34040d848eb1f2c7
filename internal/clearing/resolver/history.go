package resolver

import (
	"slices"
	"sort"
	"strings"

	"clearview/internal/clearing/models"
)

// TypeNamer resolves display names of decision types.
type TypeNamer interface {
	TypeName(t models.DecisionType) (string, error)
}

// FormatHistory renders decisions as history rows, newest first. License
// names are sorted case-sensitively and negative ones carry
// models.NegativeTag; a short name present in both sets renders negative.
//
// Errors: CodeUnknownDecisionType propagated from types.
func FormatHistory(decisions []models.ClearingDecision, types TypeNamer) (models.HistoryView, error) {
	ordered := slices.Clone(decisions)
	slices.SortStableFunc(ordered, func(a, b models.ClearingDecision) int {
		return b.DateAdded.Compare(a.DateAdded)
	})

	view := models.HistoryView{Rows: make([]models.HistoryRow, 0, len(ordered))}
	for _, d := range ordered {
		name, err := types.TypeName(d.Type)
		if err != nil {
			return models.HistoryView{}, err
		}
		licenses := historyLicenses(d)
		view.Rows = append(view.Rows, models.HistoryRow{
			Date:        d.DateAdded,
			UserName:    d.UserName,
			Scope:       d.Scope,
			Type:        d.Type,
			TypeName:    name,
			Licenses:    licenses,
			LicenseText: joinLicenses(licenses),
		})
	}
	if len(view.Rows) > 0 {
		selected := view.Rows[0].Type
		view.Selected = &selected
	}
	return view, nil
}

func historyLicenses(d models.ClearingDecision) []models.HistoryLicense {
	byName := make(map[string]bool, len(d.Positive)+len(d.Negative))
	for _, lic := range d.Positive {
		byName[lic.ShortName] = false
	}
	for _, lic := range d.Negative {
		byName[lic.ShortName] = true
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.HistoryLicense, len(names))
	for i, name := range names {
		out[i] = models.HistoryLicense{ShortName: name, Negative: byName[name]}
	}
	return out
}

func joinLicenses(licenses []models.HistoryLicense) string {
	parts := make([]string, len(licenses))
	for i, lic := range licenses {
		if lic.Negative {
			parts[i] = lic.ShortName + " " + models.NegativeTag
		} else {
			parts[i] = lic.ShortName
		}
	}
	return strings.Join(parts, ", ")
}
