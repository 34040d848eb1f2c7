package adapters_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"clearview/internal/clearing/adapters"
	"clearview/internal/clearing/models"
	"clearview/internal/clearing/ports/mocks"
	"clearview/internal/clearing/store/event"
	"clearview/internal/clearing/store/tree"
	id "clearview/pkg/domain"
)

type EventSourceSuite struct {
	suite.Suite
	ctx  context.Context
	tree *tree.InMemory
	log  *event.InMemory
}

func TestEventSourceSuite(t *testing.T) {
	suite.Run(t, new(EventSourceSuite))
}

func (s *EventSourceSuite) SetupTest() {
	s.ctx = context.Background()
	s.tree = tree.NewInMemory()
	s.Require().NoError(s.tree.Build(1, tree.Node{ItemID: 1, Children: []tree.Node{
		{ItemID: 2, Children: []tree.Node{{ItemID: 3}}},
		{ItemID: 4},
	}}))
	s.log = event.NewInMemory()
}

func (s *EventSourceSuite) appendEvent(item id.ItemID, scope models.Scope) models.ClearingEvent {
	e, err := s.log.Append(s.ctx, models.ClearingEvent{ItemID: item, Scope: scope, Type: models.TypeIdentified})
	s.Require().NoError(err)
	return e
}

func (s *EventSourceSuite) TestInheritsGlobalEventsOfAncestors() {
	rootGlobal := s.appendEvent(1, models.ScopeGlobal)
	s.appendEvent(1, models.ScopeItem)
	folderGlobal := s.appendEvent(2, models.ScopeGlobal)
	own := s.appendEvent(3, models.ScopeItem)
	s.appendEvent(4, models.ScopeGlobal)

	source := adapters.NewEventSource(s.tree, s.log)

	s.Run("with ancestors", func() {
		history, err := source.FetchEvents(s.ctx, 3, true)
		s.Require().NoError(err)
		s.True(history.Complete)
		s.Equal(id.ItemID(3), history.ItemID)
		s.Equal([]id.EventID{rootGlobal.ID, folderGlobal.ID, own.ID}, eventIDs(history.Events))
	})

	s.Run("own events only", func() {
		history, err := source.FetchEvents(s.ctx, 3, false)
		s.Require().NoError(err)
		s.True(history.Complete)
		s.Equal([]id.EventID{own.ID}, eventIDs(history.Events))
	})

	s.Run("item scoped events of the item itself are kept", func() {
		history, err := source.FetchEvents(s.ctx, 1, true)
		s.Require().NoError(err)
		s.Len(history.Events, 2)
	})
}

func (s *EventSourceSuite) TestExpiredDeadlineMarksHistoryIncomplete() {
	s.appendEvent(3, models.ScopeItem)
	source := adapters.NewEventSource(s.tree, s.log)

	ctx, cancel := context.WithDeadline(s.ctx, time.Now().Add(-time.Second))
	defer cancel()

	history, err := source.FetchEvents(ctx, 3, true)
	s.Require().NoError(err)
	s.False(history.Complete)
}

func (s *EventSourceSuite) TestCollaboratorFailures() {
	ctrl := gomock.NewController(s.T())
	treeRepo := mocks.NewMockTreeRepository(ctrl)
	log := mocks.NewMockEventLog(ctrl)
	source := adapters.NewEventSource(treeRepo, log)

	s.Run("tree failure is returned", func() {
		treeRepo.EXPECT().Ancestors(gomock.Any(), id.ItemID(3)).Return(nil, errors.New("tree down"))
		_, err := source.FetchEvents(s.ctx, 3, true)
		s.ErrorContains(err, "tree down")
	})

	s.Run("log deadline is reported as incomplete", func() {
		treeRepo.EXPECT().Ancestors(gomock.Any(), id.ItemID(3)).Return([]id.ItemID{2, 1}, nil)
		log.EXPECT().ListByItems(gomock.Any(), []id.ItemID{3, 2, 1}).Return(nil, context.DeadlineExceeded)
		history, err := source.FetchEvents(s.ctx, 3, true)
		s.Require().NoError(err)
		s.False(history.Complete)
	})

	s.Run("log failure is returned", func() {
		log.EXPECT().ListByItems(gomock.Any(), []id.ItemID{3}).Return(nil, errors.New("log down"))
		_, err := source.FetchEvents(s.ctx, 3, false)
		s.ErrorContains(err, "log down")
	})
}

func eventIDs(events []models.ClearingEvent) []id.EventID {
	out := make([]id.EventID, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
