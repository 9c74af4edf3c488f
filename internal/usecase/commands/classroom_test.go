//go:build unit

package commands_test

import (
	"context"
	"testing"

	"classreserve/internal/domain/classroom"
	"classreserve/internal/usecase/commands"
	commandsmock "classreserve/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassroomCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockClassroomRepository
	commands commands.ClassroomCommands
}

func (s *ClassroomCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockClassroomRepository(s.mockCtrl)
	s.commands = commands.NewClassroomCommands(s.mockRepo)
}

func (s *ClassroomCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassroomCommandsSuite(t *testing.T) {
	suite.Run(t, new(ClassroomCommandsTestSuite))
}

var classroomParams = commands.ClassroomParams{
	Name:      "Room 101",
	Location:  "Building A",
	Capacity:  30,
	Equipment: map[string]bool{"projector": true},
}

func (s *ClassroomCommandsTestSuite) TestCreate() {
	s.Run("success", func() {
		s.mockRepo.EXPECT().
			Create("Room 101", "Building A", 30, classroomParams.Equipment).
			Return(int64(1), nil).Times(1)

		id, err := s.commands.Create(context.Background(), classroomParams)
		s.Require().NoError(err)
		s.Equal(int64(1), id)
	})

	s.Run("validation errors pass through", func() {
		s.mockRepo.EXPECT().
			Create("", "", 0, gomock.Nil()).
			Return(int64(0), classroom.ErrEmptyName).Times(1)

		_, err := s.commands.Create(context.Background(), commands.ClassroomParams{})
		s.ErrorIs(err, classroom.ErrEmptyName)
	})
}

func (s *ClassroomCommandsTestSuite) TestUpdate() {
	s.mockRepo.EXPECT().
		Update(int64(1), "Room 101", "Building A", 30, classroomParams.Equipment).
		Return(classroom.ErrNotFound).Times(1)

	err := s.commands.Update(context.Background(), 1, classroomParams)
	s.ErrorIs(err, classroom.ErrNotFound)
}

func (s *ClassroomCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockRepo.EXPECT().Delete(int64(1)).Return(true).Times(1)
		s.NoError(s.commands.Delete(context.Background(), 1))
	})

	s.Run("missing classroom", func() {
		s.mockRepo.EXPECT().Delete(int64(1)).Return(false).Times(1)
		s.ErrorIs(s.commands.Delete(context.Background(), 1), commands.ErrClassroomNotFound)
	})
}
