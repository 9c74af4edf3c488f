package commands

import (
	"context"

	"classreserve/internal/pkg/errs"
)

var ErrClassroomNotFound = errs.New("classroom not found")

type ClassroomRepository interface {
	Create(name, location string, capacity int, equipment map[string]bool) (int64, error)
	Update(id int64, name, location string, capacity int, equipment map[string]bool) error
	Delete(id int64) bool
}

type ClassroomParams struct {
	Name      string
	Location  string
	Capacity  int
	Equipment map[string]bool
}

type ClassroomCommands interface {
	Create(ctx context.Context, params ClassroomParams) (int64, error)
	Update(ctx context.Context, id int64, params ClassroomParams) error
	Delete(ctx context.Context, id int64) error
}

type classroomCommandsImpl struct {
	repo ClassroomRepository
}

func NewClassroomCommands(repo ClassroomRepository) ClassroomCommands {
	return &classroomCommandsImpl{repo: repo}
}

func (c *classroomCommandsImpl) Create(_ context.Context, params ClassroomParams) (int64, error) {
	return c.repo.Create(params.Name, params.Location, params.Capacity, params.Equipment)
}

func (c *classroomCommandsImpl) Update(_ context.Context, id int64, params ClassroomParams) error {
	return c.repo.Update(id, params.Name, params.Location, params.Capacity, params.Equipment)
}

func (c *classroomCommandsImpl) Delete(_ context.Context, id int64) error {
	if !c.repo.Delete(id) {
		return ErrClassroomNotFound
	}
	return nil
}
