package classroom

import (
	"errors"
	"strings"
)

var (
	ErrNotFound         = errors.New("classroom not found")
	ErrEmptyName        = errors.New("classroom name cannot be empty")
	ErrNameTooLong      = errors.New("classroom name is too long (max 255 characters)")
	ErrNegativeCapacity = errors.New("classroom capacity cannot be negative")
)

const MaxNameLength = 255

// Classroom is a bookable room in the catalog. The reservation core only
// references it by id; attributes exist for listing and display.
type Classroom struct {
	id        int64
	name      string
	location  string
	capacity  int
	equipment map[string]bool
}

func NewClassroom(id int64, name, location string, capacity int, equipment map[string]bool) (*Classroom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	if equipment == nil {
		equipment = map[string]bool{}
	}

	return &Classroom{
		id:        id,
		name:      name,
		location:  location,
		capacity:  capacity,
		equipment: equipment,
	}, nil
}

func (c *Classroom) ID() int64        { return c.id }
func (c *Classroom) Name() string     { return c.name }
func (c *Classroom) Location() string { return c.location }
func (c *Classroom) Capacity() int    { return c.capacity }

func (c *Classroom) Equipment() map[string]bool {
	out := make(map[string]bool, len(c.equipment))
	for k, v := range c.equipment {
		out[k] = v
	}
	return out
}
