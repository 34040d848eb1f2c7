package event_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/suite"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
	"clearview/pkg/platform/sentinel"
)

type eventLog interface {
	Append(ctx context.Context, event models.ClearingEvent) (models.ClearingEvent, error)
	ListByItems(ctx context.Context, items []id.ItemID) ([]models.ClearingEvent, error)
}

// EventLogContractSuite is the behaviour every event log backend shares.
// Backend suites embed it and set newLog in SetupTest.
type EventLogContractSuite struct {
	suite.Suite
	ctx    context.Context
	log    eventLog
	base   time.Time
	newLog func() eventLog
}

var (
	mit  = models.LicenseRef{ID: 1, ShortName: "MIT"}
	gpl2 = models.LicenseRef{ID: 2, ShortName: "GPL-2.0"}
)

func (s *EventLogContractSuite) setup(newLog func() eventLog) {
	s.ctx = context.Background()
	s.base = time.Date(2014, 7, 1, 12, 0, 0, 0, time.UTC)
	s.newLog = newLog
	s.log = newLog()
}

func (s *EventLogContractSuite) event(item id.ItemID, offset time.Duration) models.ClearingEvent {
	return models.ClearingEvent{
		ItemID:    item,
		UserID:    3,
		UserName:  "alice",
		Timestamp: s.base.Add(offset),
		Scope:     models.ScopeItem,
		Type:      models.TypeIdentified,
		Positive:  []models.LicenseRef{mit},
		Negative:  []models.LicenseRef{gpl2},
	}
}

func (s *EventLogContractSuite) TestAppendAssignsIdentity() {
	first, err := s.log.Append(s.ctx, s.event(10, 0))
	s.Require().NoError(err)
	second, err := s.log.Append(s.ctx, s.event(10, 0))
	s.Require().NoError(err)

	s.False(first.ID.IsNil())
	s.NotEqual(first.ID, second.ID)
	s.Less(first.Seq, second.Seq)
	s.Equal(models.OriginUser, first.Origin)
}

func (s *EventLogContractSuite) TestAppendStampsMissingTimestamp() {
	e := s.event(10, 0)
	e.Timestamp = time.Time{}
	stored, err := s.log.Append(s.ctx, e)
	s.Require().NoError(err)
	s.False(stored.Timestamp.IsZero())
}

func (s *EventLogContractSuite) TestAppendValidates() {
	s.Run("rejects missing item", func() {
		_, err := s.log.Append(s.ctx, s.event(0, 0))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects unknown scope", func() {
		e := s.event(10, 0)
		e.Scope = "folder"
		_, err := s.log.Append(s.ctx, e)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects duplicate event id", func() {
		stored, err := s.log.Append(s.ctx, s.event(10, 0))
		s.Require().NoError(err)
		dup := s.event(11, time.Second)
		dup.ID = stored.ID
		_, err = s.log.Append(s.ctx, dup)
		s.ErrorIs(err, sentinel.ErrConflict)
	})
}

func (s *EventLogContractSuite) TestListOrdersByTimestampThenSeq() {
	late, err := s.log.Append(s.ctx, s.event(10, 2*time.Second))
	s.Require().NoError(err)
	early, err := s.log.Append(s.ctx, s.event(20, time.Second))
	s.Require().NoError(err)
	tieA, err := s.log.Append(s.ctx, s.event(10, 3*time.Second))
	s.Require().NoError(err)
	tieB, err := s.log.Append(s.ctx, s.event(20, 3*time.Second))
	s.Require().NoError(err)
	_, err = s.log.Append(s.ctx, s.event(30, 0))
	s.Require().NoError(err)

	got, err := s.log.ListByItems(s.ctx, []id.ItemID{20, 10})
	s.Require().NoError(err)
	s.Require().Len(got, 4)
	s.Equal([]id.EventID{early.ID, late.ID, tieA.ID, tieB.ID},
		[]id.EventID{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func (s *EventLogContractSuite) TestListRoundTripsLicenses() {
	stored, err := s.log.Append(s.ctx, s.event(10, 0))
	s.Require().NoError(err)

	got, err := s.log.ListByItems(s.ctx, []id.ItemID{10, 10})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(stored.ID, got[0].ID)
	s.Equal([]models.LicenseRef{mit}, got[0].Positive)
	s.Equal([]models.LicenseRef{gpl2}, got[0].Negative)
	s.True(stored.Timestamp.Equal(got[0].Timestamp))
	s.Equal(models.ScopeItem, got[0].Scope)
	s.Equal(models.TypeIdentified, got[0].Type)
}

func (s *EventLogContractSuite) TestListUnknownItems() {
	got, err := s.log.ListByItems(s.ctx, []id.ItemID{404})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *EventLogContractSuite) TestConcurrentAppendsGetDistinctSeq() {
	const writers = 16
	var wg sync.WaitGroup
	seqs := make(chan int64, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := s.log.Append(s.ctx, s.event(50, time.Duration(i)*time.Millisecond))
			if err == nil {
				seqs <- e.Seq
			}
		}(i)
	}
	wg.Wait()
	close(seqs)

	seen := map[int64]bool{}
	for seq := range seqs {
		s.False(seen[seq], "seq %d handed out twice", seq)
		seen[seq] = true
	}
	s.Len(seen, writers)

	got, err := s.log.ListByItems(s.ctx, []id.ItemID{50})
	s.Require().NoError(err)
	s.Len(got, writers)
}
