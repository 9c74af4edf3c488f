//go:build unit

package filestore_test

import (
	"path/filepath"
	"testing"

	"classreserve/internal/domain/classroom"
	"classreserve/internal/infra/filestore"

	"github.com/stretchr/testify/suite"
)

type ClassroomStoreTestSuite struct {
	suite.Suite
	path  string
	store *filestore.ClassroomStore
}

func (s *ClassroomStoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "classrooms.json")
	s.store = filestore.NewClassroomStore(s.path)
}

func TestClassroomStoreSuite(t *testing.T) {
	suite.Run(t, new(ClassroomStoreTestSuite))
}

func (s *ClassroomStoreTestSuite) TestCreate() {
	s.Run("first classroom gets id 1", func() {
		id, err := s.store.Create("Room 101", "Building A", 30, map[string]bool{"projector": true})
		s.Require().NoError(err)
		s.Equal(int64(1), id)

		room, ok := s.store.Get(id)
		s.Require().True(ok)
		s.Equal("Room 101", room.Name())
		s.Equal("Building A", room.Location())
		s.Equal(30, room.Capacity())
		s.True(room.Equipment()["projector"])
	})

	s.Run("domain validation applies", func() {
		_, err := s.store.Create("", "", 10, nil)
		s.ErrorIs(err, classroom.ErrEmptyName)

		_, err = s.store.Create("Room 102", "", -1, nil)
		s.ErrorIs(err, classroom.ErrNegativeCapacity)
	})
}

func (s *ClassroomStoreTestSuite) TestAll() {
	for _, name := range []string{"C", "A", "B"} {
		_, err := s.store.Create(name, "", 10, nil)
		s.Require().NoError(err)
	}

	rooms := s.store.All()
	s.Require().Len(rooms, 3)
	// sorted by id, i.e. creation order
	s.Equal("C", rooms[0].Name())
	s.Equal("A", rooms[1].Name())
	s.Equal("B", rooms[2].Name())
}

func (s *ClassroomStoreTestSuite) TestUpdate() {
	id, err := s.store.Create("Room 101", "Building A", 30, nil)
	s.Require().NoError(err)

	s.Run("replaces all attributes", func() {
		err := s.store.Update(id, "Room 101b", "Building B", 40, map[string]bool{"whiteboard": true})
		s.Require().NoError(err)

		room, ok := s.store.Get(id)
		s.Require().True(ok)
		s.Equal("Room 101b", room.Name())
		s.Equal("Building B", room.Location())
		s.Equal(40, room.Capacity())
	})

	s.Run("missing classroom", func() {
		s.ErrorIs(s.store.Update(99, "Room", "", 10, nil), classroom.ErrNotFound)
	})

	s.Run("invalid attributes leave the stored classroom untouched", func() {
		s.ErrorIs(s.store.Update(id, "", "", 10, nil), classroom.ErrEmptyName)

		room, ok := s.store.Get(id)
		s.Require().True(ok)
		s.Equal("Room 101b", room.Name())
	})
}

func (s *ClassroomStoreTestSuite) TestDelete() {
	id, err := s.store.Create("Room 101", "", 10, nil)
	s.Require().NoError(err)

	s.True(s.store.Delete(id))
	s.False(s.store.Exists(id))
	s.False(s.store.Delete(id))
}

func (s *ClassroomStoreTestSuite) TestPersistence() {
	id, err := s.store.Create("Room 101", "Building A", 30, map[string]bool{"projector": true})
	s.Require().NoError(err)

	reloaded := filestore.NewClassroomStore(s.path)
	room, ok := reloaded.Get(id)
	s.Require().True(ok)
	s.Equal("Room 101", room.Name())
	s.True(room.Equipment()["projector"])

	nextID, err := reloaded.Create("Room 102", "", 20, nil)
	s.Require().NoError(err)
	s.Equal(id+1, nextID)
}
