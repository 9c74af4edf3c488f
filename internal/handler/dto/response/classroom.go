package response

import (
	"classreserve/internal/usecase/queries"
)

type ClassroomResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity"`
	Equipment map[string]bool `json:"equipment"`
}

type CreateClassroomResponse struct {
	ID int64 `json:"id"`
}

func FromClassroomView(rm *queries.ClassroomView) *ClassroomResponse {
	return &ClassroomResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Location:  rm.Location,
		Capacity:  rm.Capacity,
		Equipment: rm.Equipment,
	}
}

func FromClassroomViews(rms []*queries.ClassroomView) []*ClassroomResponse {
	out := make([]*ClassroomResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromClassroomView(rm)
	}
	return out
}
