package request

import (
	"classreserve/internal/usecase/commands"
)

type CreateReservationRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		ClassroomID: r.ClassroomID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}
