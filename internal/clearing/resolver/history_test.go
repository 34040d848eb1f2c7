package resolver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearview/internal/clearing/decisiontypes"
	"clearview/internal/clearing/models"
	"clearview/internal/clearing/resolver"
	dErrors "clearview/pkg/domain-errors"
)

func TestFormatHistory(t *testing.T) {
	types := decisiontypes.Default()
	t0 := time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC)
	lower := models.LicenseRef{ID: 9, ShortName: "bsd"}

	decisions := []models.ClearingDecision{
		{
			DateAdded: t0,
			UserName:  "alice",
			Scope:     models.ScopeItem,
			Type:      models.TypeToBeDiscussed,
			Positive:  []models.LicenseRef{mit},
		},
		{
			DateAdded: t0.Add(time.Hour),
			UserName:  "bob",
			Scope:     models.ScopeGlobal,
			Type:      models.TypeIdentified,
			Positive:  []models.LicenseRef{mit, lower},
			Negative:  []models.LicenseRef{gpl2},
		},
	}

	t.Run("rows are newest first with selected type from the newest", func(t *testing.T) {
		view, err := resolver.FormatHistory(decisions, types)
		require.NoError(t, err)
		require.Len(t, view.Rows, 2)

		assert.Equal(t, "bob", view.Rows[0].UserName)
		assert.Equal(t, "Identified", view.Rows[0].TypeName)
		assert.Equal(t, models.ScopeGlobal, view.Rows[0].Scope)
		require.NotNil(t, view.Selected)
		assert.Equal(t, models.TypeIdentified, *view.Selected)

		assert.Equal(t, "alice", view.Rows[1].UserName)
		assert.Equal(t, "MIT", view.Rows[1].LicenseText)
	})

	t.Run("license names sort case-sensitively and negatives are tagged", func(t *testing.T) {
		view, err := resolver.FormatHistory(decisions, types)
		require.NoError(t, err)
		assert.Equal(t, "GPL-2.0 (negative), MIT, bsd", view.Rows[0].LicenseText)
		assert.Equal(t, []models.HistoryLicense{
			{ShortName: "GPL-2.0", Negative: true},
			{ShortName: "MIT"},
			{ShortName: "bsd"},
		}, view.Rows[0].Licenses)
	})

	t.Run("short name in both sets renders negative", func(t *testing.T) {
		view, err := resolver.FormatHistory([]models.ClearingDecision{{
			DateAdded: t0,
			Type:      models.TypeIdentified,
			Positive:  []models.LicenseRef{mit},
			Negative:  []models.LicenseRef{{ID: 77, ShortName: "MIT"}},
		}}, types)
		require.NoError(t, err)
		assert.Equal(t, "MIT (negative)", view.Rows[0].LicenseText)
	})

	t.Run("empty history has no selection", func(t *testing.T) {
		view, err := resolver.FormatHistory(nil, types)
		require.NoError(t, err)
		assert.Empty(t, view.Rows)
		assert.Nil(t, view.Selected)
	})

	t.Run("unknown decision type propagates", func(t *testing.T) {
		_, err := resolver.FormatHistory([]models.ClearingDecision{{DateAdded: t0, Type: 42}}, types)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownDecisionType))
	})
}
