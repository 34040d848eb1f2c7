package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"clearview/internal/clearing/ports"
	id "clearview/pkg/domain"
	"clearview/pkg/platform/sentinel"
)

// upload 1:
//
//	1 root
//	├── 2 src
//	│   ├── 3 main.c
//	│   └── 4 util.c
//	└── 5 README
var listing = Node{ItemID: 1, Name: "root", Children: []Node{
	{ItemID: 2, Name: "src", Children: []Node{
		{ItemID: 3, Name: "main.c"},
		{ItemID: 4, Name: "util.c"},
	}},
	{ItemID: 5, Name: "README"},
}}

type TreeSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

func (s *TreeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.Require().NoError(s.store.Build(1, listing))
}

func (s *TreeSuite) TestBounds() {
	root, err := s.store.Bounds(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(ports.TreeBounds{ItemID: 1, UploadID: 1, Left: 1, Right: 10}, root)
	s.True(root.ContainsFiles())

	file, err := s.store.Bounds(s.ctx, 3)
	s.Require().NoError(err)
	s.False(file.ContainsFiles())

	_, err = s.store.Bounds(s.ctx, 99)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *TreeSuite) TestAncestorsNearestFirst() {
	chain, err := s.store.Ancestors(s.ctx, 4)
	s.Require().NoError(err)
	s.Equal([]id.ItemID{2, 1}, chain)

	chain, err = s.store.Ancestors(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(chain)
}

func (s *TreeSuite) TestContainedFiles() {
	s.Run("root contains every file", func() {
		root, err := s.store.Bounds(s.ctx, 1)
		s.Require().NoError(err)
		files, err := s.store.ContainedFiles(s.ctx, root)
		s.Require().NoError(err)
		s.Equal([]id.ItemID{3, 4, 5}, files)
	})

	s.Run("folder contains its own files only", func() {
		src, err := s.store.Bounds(s.ctx, 2)
		s.Require().NoError(err)
		files, err := s.store.ContainedFiles(s.ctx, src)
		s.Require().NoError(err)
		s.Equal([]id.ItemID{3, 4}, files)
	})

	s.Run("file contains nothing", func() {
		file, err := s.store.Bounds(s.ctx, 5)
		s.Require().NoError(err)
		files, err := s.store.ContainedFiles(s.ctx, file)
		s.Require().NoError(err)
		s.Empty(files)
	})
}

func (s *TreeSuite) TestFirstFile() {
	first, err := s.store.FirstFile(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(id.ItemID(3), first)

	_, err = s.store.FirstFile(s.ctx, 7)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *TreeSuite) TestInsertRejectsBrokenBounds() {
	s.ErrorIs(s.store.Insert(ports.TreeBounds{ItemID: 20, UploadID: 1, Left: 4, Right: 4}), sentinel.ErrInvalidState)
	s.ErrorIs(s.store.Insert(ports.TreeBounds{ItemID: 21, UploadID: 1, Left: 3, Right: 12}), sentinel.ErrInvalidState)
	s.NoError(s.store.Insert(ports.TreeBounds{ItemID: 22, UploadID: 2, Left: 3, Right: 12}))
}
