package request

import (
	"classreserve/internal/usecase/commands"
)

type ClassroomRequest struct {
	Name      string          `json:"name" binding:"required,max=255"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity" binding:"min=0"`
	Equipment map[string]bool `json:"equipment"`
}

func (r ClassroomRequest) ToParams() commands.ClassroomParams {
	return commands.ClassroomParams{
		Name:      r.Name,
		Location:  r.Location,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
	}
}
