package response

import (
	"classreserve/internal/usecase/queries"
)

type ReservationResponse struct {
	ID                int64  `json:"id"`
	ClassroomID       int64  `json:"classroomId"`
	ClassroomName     string `json:"classroomName"`
	ClassroomLocation string `json:"classroomLocation"`
	UserID            string `json:"userId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
}

type CreateReservationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                rm.ID,
		ClassroomID:       rm.ClassroomID,
		ClassroomName:     rm.ClassroomName,
		ClassroomLocation: rm.ClassroomLocation,
		UserID:            rm.UserID,
		Date:              rm.Date,
		StartTime:         rm.StartTime,
		EndTime:           rm.EndTime,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}
