package resolver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"clearview/internal/clearing/models"
	"clearview/internal/clearing/resolver"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// =============================================================================
// Decision Resolver Test Suite
// =============================================================================
// Resolution is a pure fold, so every property is checked directly against
// in-memory event sequences.

var (
	mit    = models.LicenseRef{ID: 1, ShortName: "MIT"}
	gpl2   = models.LicenseRef{ID: 2, ShortName: "GPL-2.0"}
	apache = models.LicenseRef{ID: 3, ShortName: "Apache-2.0"}
)

const item = id.ItemID(100)

type ResolverSuite struct {
	suite.Suite
	base time.Time
	seq  int64
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.base = time.Date(2014, 7, 1, 12, 0, 0, 0, time.UTC)
	s.seq = 0
}

type eventOpt func(*models.ClearingEvent)

func positive(refs ...models.LicenseRef) eventOpt {
	return func(e *models.ClearingEvent) { e.Positive = refs }
}

func negative(refs ...models.LicenseRef) eventOpt {
	return func(e *models.ClearingEvent) { e.Negative = refs }
}

func ofType(t models.DecisionType) eventOpt {
	return func(e *models.ClearingEvent) { e.Type = t }
}

func scoped(sc models.Scope) eventOpt {
	return func(e *models.ClearingEvent) { e.Scope = sc }
}

func by(user id.UserID, name string) eventOpt {
	return func(e *models.ClearingEvent) { e.UserID, e.UserName = user, name }
}

// event builds an event at base+t seconds; Seq follows construction order.
func (s *ResolverSuite) event(t int, opts ...eventOpt) models.ClearingEvent {
	s.seq++
	e := models.ClearingEvent{
		ID:        id.NewEventID(),
		Seq:       s.seq,
		ItemID:    item,
		UserID:    1,
		UserName:  "alice",
		Timestamp: s.base.Add(time.Duration(t) * time.Second),
		Scope:     models.ScopeItem,
		Type:      models.TypeIdentified,
		Origin:    models.OriginUser,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (s *ResolverSuite) resolve(events ...models.ClearingEvent) *models.ClearingDecision {
	d, err := resolver.Resolve(models.CompleteHistory(item, events...), models.ScopeFilterAll)
	s.Require().NoError(err)
	return d
}

func (s *ResolverSuite) TestEmptyHistory() {
	s.Run("no events resolves to no decision", func() {
		d, err := resolver.Resolve(models.CompleteHistory(item), models.ScopeFilterAll)
		s.Require().NoError(err)
		s.Nil(d)
	})

	s.Run("filter removing every event resolves to no decision", func() {
		e := s.event(1, positive(mit), scoped(models.ScopeGlobal))
		d, err := resolver.Resolve(models.CompleteHistory(item, e), models.ScopeFilterItem)
		s.Require().NoError(err)
		s.Nil(d)
	})
}

func (s *ResolverSuite) TestIncompleteHistory() {
	history := models.EventHistory{ItemID: item, Events: []models.ClearingEvent{s.event(1, positive(mit))}}

	_, err := resolver.Resolve(history, models.ScopeFilterAll)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodePreconditionFailed))

	_, err = resolver.ResolveHistory(history, models.ScopeFilterAll)
	s.True(dErrors.HasCode(err, dErrors.CodePreconditionFailed))
}

func (s *ResolverSuite) TestLatestAssertionWins() {
	s.Run("later negative removes earlier positive", func() {
		d := s.resolve(s.event(1, positive(mit)), s.event(2, negative(mit)))
		s.Empty(d.Positive)
		s.Equal([]models.LicenseRef{mit}, d.Negative)
	})

	s.Run("reversing timestamps reverses the outcome", func() {
		d := s.resolve(s.event(2, positive(mit)), s.event(1, negative(mit)))
		s.Equal([]models.LicenseRef{mit}, d.Positive)
		s.Empty(d.Negative)
	})

	s.Run("equal timestamps are decided by insertion order", func() {
		first := s.event(5, negative(mit))
		second := s.event(5, positive(mit))
		// handed over out of order; Seq still decides
		d := s.resolve(second, first)
		s.Equal([]models.LicenseRef{mit}, d.Positive)
		s.Empty(d.Negative)
	})

	s.Run("mixed history scenario", func() {
		d := s.resolve(
			s.event(1, positive(mit)),
			s.event(2, positive(gpl2)),
			s.event(3, negative(mit)),
		)
		s.Equal([]models.LicenseRef{gpl2}, d.Positive)
		s.Equal([]models.LicenseRef{mit}, d.Negative)
	})

	s.Run("license named in both sets of one event ends negative", func() {
		d := s.resolve(s.event(1, positive(mit), negative(mit)))
		s.Empty(d.Positive)
		s.Equal([]models.LicenseRef{mit}, d.Negative)
	})
}

func (s *ResolverSuite) TestNoLicenseInBothSets() {
	d := s.resolve(
		s.event(1, positive(mit, gpl2, apache)),
		s.event(2, negative(gpl2)),
		s.event(3, positive(gpl2), negative(apache)),
		s.event(4, negative(mit)),
	)
	seen := map[id.LicenseID]bool{}
	for _, ref := range d.Positive {
		seen[ref.ID] = true
	}
	for _, ref := range d.Negative {
		s.False(seen[ref.ID], "license %s in both sets", ref.ShortName)
	}
	s.Equal([]models.LicenseRef{gpl2}, d.Positive)
	s.Equal([]models.LicenseRef{apache, mit}, d.Negative)
}

func (s *ResolverSuite) TestTypeScopeAndAuthorTrackLatestEvent() {
	d := s.resolve(
		s.event(1, positive(mit), ofType(models.TypeToBeDiscussed), by(1, "alice")),
		s.event(2, ofType(models.TypeIdentified), scoped(models.ScopeGlobal), by(2, "bob")),
	)
	s.Equal(models.TypeIdentified, d.Type)
	s.Equal(models.ScopeGlobal, d.Scope)
	s.Equal(id.UserID(2), d.UserID)
	s.Equal("bob", d.UserName)
	s.Equal(s.base.Add(2*time.Second), d.DateAdded)
	s.Equal(item, d.ItemID)
	s.Equal([]models.LicenseRef{mit}, d.Positive)
}

func (s *ResolverSuite) TestNoOpMarker() {
	s.Run("same-as-previous keeps sets, type and scope", func() {
		d := s.resolve(
			s.event(1, positive(mit), negative(gpl2), ofType(models.TypeIdentified)),
			s.event(2, positive(apache), negative(mit), ofType(models.TypeSameAsPrevious),
				scoped(models.ScopeGlobal), by(9, "carol")),
		)
		s.Equal([]models.LicenseRef{mit}, d.Positive)
		s.Equal([]models.LicenseRef{gpl2}, d.Negative)
		s.Equal(models.TypeIdentified, d.Type)
		s.Equal(models.ScopeItem, d.Scope)
		s.Equal("carol", d.UserName)
		s.Equal(s.base.Add(2*time.Second), d.DateAdded)
	})

	s.Run("a lone no-op seeds the decision fields", func() {
		d := s.resolve(s.event(1, ofType(models.TypeSameAsPrevious), positive(mit)))
		s.Require().NotNil(d)
		s.Equal(models.TypeSameAsPrevious, d.Type)
		s.Empty(d.Positive)
	})
}

func (s *ResolverSuite) TestReplayingCurrentDecisionIsIdempotent() {
	events := []models.ClearingEvent{
		s.event(1, positive(mit, gpl2)),
		s.event(2, negative(gpl2)),
	}
	before := s.resolve(events...)

	replay := s.event(3, positive(before.Positive...), negative(before.Negative...), by(7, "dave"))
	after := s.resolve(append(events, replay)...)

	s.Equal(before.Positive, after.Positive)
	s.Equal(before.Negative, after.Negative)
	s.Equal(before.Type, after.Type)
	s.Equal("dave", after.UserName)
	s.True(after.DateAdded.After(before.DateAdded))
}

func (s *ResolverSuite) TestDeterminism() {
	events := []models.ClearingEvent{
		s.event(3, negative(mit)),
		s.event(1, positive(mit, apache)),
		s.event(2, positive(gpl2)),
		s.event(2, negative(apache)),
	}
	first := s.resolve(events...)
	second := s.resolve(events...)
	s.Equal(first, second)

	// input slice is not reordered in place
	s.Equal(s.base.Add(3*time.Second), events[0].Timestamp)
}

func (s *ResolverSuite) TestScopeFilter() {
	events := []models.ClearingEvent{
		s.event(1, positive(mit), scoped(models.ScopeGlobal)),
		s.event(2, positive(gpl2), scoped(models.ScopeItem)),
	}
	history := models.CompleteHistory(item, events...)

	d, err := resolver.Resolve(history, models.ScopeFilterItem)
	s.Require().NoError(err)
	s.Equal([]models.LicenseRef{gpl2}, d.Positive)

	d, err = resolver.Resolve(history, models.ScopeFilterGlobal)
	s.Require().NoError(err)
	s.Equal([]models.LicenseRef{mit}, d.Positive)
	s.Equal(models.ScopeGlobal, d.Scope)

	d, err = resolver.Resolve(history, "")
	s.Require().NoError(err)
	s.Equal([]models.LicenseRef{gpl2, mit}, d.Positive)
}

func (s *ResolverSuite) TestResolveHistory() {
	events := []models.ClearingEvent{
		s.event(1, positive(mit)),
		s.event(2, positive(gpl2)),
		s.event(3, negative(mit)),
	}
	history := models.CompleteHistory(item, events...)

	rows, err := resolver.ResolveHistory(history, models.ScopeFilterAll)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	current, err := resolver.Resolve(history, models.ScopeFilterAll)
	s.Require().NoError(err)
	s.Equal(*current, rows[0])

	s.Equal([]models.LicenseRef{mit}, rows[2].Positive)
	s.Equal([]models.LicenseRef{gpl2, mit}, rows[1].Positive)
	s.Empty(rows[1].Negative)
}
