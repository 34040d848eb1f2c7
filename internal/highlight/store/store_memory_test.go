package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

func lic(v id.LicenseID) *id.LicenseID { return &v }

func TestFetchHighlightSpans(t *testing.T) {
	ctx := context.Background()
	s := NewSpans()
	s.Add(10,
		models.HighlightSpan{Start: 0, End: 5, AgentID: 1, LicenseID: lic(7), Kind: models.KindMatch},
		models.HighlightSpan{Start: 3, End: 9, AgentID: 2, LicenseID: lic(8), Kind: models.KindMatch},
		models.HighlightSpan{Start: 4, End: 6, AgentID: 2, Kind: models.KindBulk},
	)

	t.Run("all spans", func(t *testing.T) {
		set, err := s.FetchHighlightSpans(ctx, 10, nil, nil)
		require.NoError(t, err)
		assert.True(t, set.Complete)
		assert.Len(t, set.Spans, 3)
	})

	t.Run("narrowed by license", func(t *testing.T) {
		set, err := s.FetchHighlightSpans(ctx, 10, lic(8), nil)
		require.NoError(t, err)
		require.Len(t, set.Spans, 1)
		assert.Equal(t, 3, set.Spans[0].Start)
	})

	t.Run("narrowed by agent", func(t *testing.T) {
		agent := id.AgentID(2)
		set, err := s.FetchHighlightSpans(ctx, 10, nil, &agent)
		require.NoError(t, err)
		assert.Len(t, set.Spans, 2)
	})

	t.Run("unknown item is an empty complete set", func(t *testing.T) {
		set, err := s.FetchHighlightSpans(ctx, 99, nil, nil)
		require.NoError(t, err)
		assert.True(t, set.Complete)
		assert.Empty(t, set.Spans)
	})

	t.Run("cancelled fetch is incomplete", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		set, err := s.FetchHighlightSpans(cancelled, 10, nil, nil)
		require.NoError(t, err)
		assert.False(t, set.Complete)
	})

	t.Run("returned spans do not alias the store", func(t *testing.T) {
		set, err := s.FetchHighlightSpans(ctx, 10, nil, nil)
		require.NoError(t, err)
		*set.Spans[0].LicenseID = 99
		again, err := s.FetchHighlightSpans(ctx, 10, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, id.LicenseID(7), *again.Spans[0].LicenseID)
	})
}

func TestReferenceText(t *testing.T) {
	ctx := context.Background()
	r := NewReferenceTexts()
	r.SetLicenseText(7, "Permission is hereby granted")
	r.SetMatchText(7, 10, models.Range{Start: 0, End: 5}, "hereby")

	text, err := r.ReferenceText(ctx, 7, 10, models.Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "hereby", text)

	text, err = r.ReferenceText(ctx, 7, 11, models.Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "Permission is hereby granted", text)

	text, err = r.ReferenceText(ctx, 8, 10, models.Range{})
	require.NoError(t, err)
	assert.Empty(t, text)
}
