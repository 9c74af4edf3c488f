package queries

import (
	"context"

	"classreserve/internal/domain/classroom"

	"github.com/jinzhu/copier"
)

type ClassroomView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity"`
	Equipment map[string]bool `json:"equipment"`
}

type ClassroomCatalog interface {
	Get(id int64) (*classroom.Classroom, bool)
	All() []*classroom.Classroom
}

type ClassroomQueries interface {
	GetByID(ctx context.Context, id int64) (*ClassroomView, error)
	List(ctx context.Context) ([]*ClassroomView, error)
}

type classroomQueriesImpl struct {
	catalog ClassroomCatalog
}

func NewClassroomQueries(catalog ClassroomCatalog) ClassroomQueries {
	return &classroomQueriesImpl{catalog: catalog}
}

func (q *classroomQueriesImpl) GetByID(_ context.Context, id int64) (*ClassroomView, error) {
	room, ok := q.catalog.Get(id)
	if !ok {
		return nil, classroom.ErrNotFound
	}
	return toClassroomView(room)
}

func (q *classroomQueriesImpl) List(_ context.Context) ([]*ClassroomView, error) {
	rooms := q.catalog.All()
	views := make([]*ClassroomView, 0, len(rooms))
	for _, room := range rooms {
		view, err := toClassroomView(room)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// copier maps the entity's accessor methods onto the view fields.
func toClassroomView(room *classroom.Classroom) (*ClassroomView, error) {
	var view ClassroomView
	if err := copier.Copy(&view, room); err != nil {
		return nil, err
	}
	return &view, nil
}
