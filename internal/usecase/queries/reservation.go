package queries

import (
	"context"
	"fmt"
	"sort"

	"classreserve/internal/domain/classroom"
	"classreserve/internal/domain/reservation"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                int64  `json:"id"`
	ClassroomID       int64  `json:"classroom_id"`
	ClassroomName     string `json:"classroom_name"`
	ClassroomLocation string `json:"classroom_location"`
	UserID            string `json:"user_id"`
	Date              string `json:"date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
}

type ReservationReader interface {
	Get(id int64) (*reservation.Reservation, bool)
	ByUser(userID string) []*reservation.Reservation
	ByClassroom(classroomID int64, date *string) []*reservation.Reservation
}

type ClassroomReader interface {
	Get(id int64) (*classroom.Classroom, bool)
	Exists(id int64) bool
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	// ListByUser sorts newest first; the store itself keeps no order for
	// per-user lookups.
	ListByUser(ctx context.Context, userID string) ([]*ReservationView, error)
	// ListByClassroom relies on the store's ascending (date, start)
	// ordering guarantee. A supplied date is normalized before matching.
	ListByClassroom(ctx context.Context, classroomID int64, date *string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReader
	classrooms   ClassroomReader
}

func NewReservationQueries(reservations ReservationReader, classrooms ClassroomReader) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		classrooms:   classrooms,
	}
}

func (q *reservationQueriesImpl) GetByID(_ context.Context, id int64) (*ReservationView, error) {
	res, ok := q.reservations.Get(id)
	if !ok {
		return nil, reservation.ErrNotFound
	}
	return q.toView(res), nil
}

func (q *reservationQueriesImpl) ListByUser(_ context.Context, userID string) ([]*ReservationView, error) {
	rows := q.reservations.ByUser(userID)

	views := make([]*ReservationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, q.toView(r))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Date != views[j].Date {
			return views[i].Date > views[j].Date
		}
		return views[i].StartTime > views[j].StartTime
	})
	return views, nil
}

func (q *reservationQueriesImpl) ListByClassroom(_ context.Context, classroomID int64, date *string) ([]*ReservationView, error) {
	if !q.classrooms.Exists(classroomID) {
		return nil, classroom.ErrNotFound
	}

	if date != nil {
		parsed, err := reservation.ParseDate(*date)
		if err != nil {
			return nil, err
		}
		canonical := parsed.String()
		date = &canonical
	}

	rows := q.reservations.ByClassroom(classroomID, date)
	views := make([]*ReservationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, q.toView(r))
	}
	return views, nil
}

func (q *reservationQueriesImpl) toView(r *reservation.Reservation) *ReservationView {
	view := &ReservationView{
		ID:          r.ID(),
		ClassroomID: r.ClassroomID(),
		UserID:      r.UserID(),
		Date:        r.Date().String(),
		StartTime:   r.Slot().Start().String(),
		EndTime:     r.Slot().End().String(),
	}

	if room, ok := q.classrooms.Get(r.ClassroomID()); ok {
		view.ClassroomName = room.Name()
		view.ClassroomLocation = room.Location()
	} else {
		// Reservations survive classroom deletion; keep the row readable.
		view.ClassroomName = fmt.Sprintf("Classroom %d", r.ClassroomID())
	}
	return view
}
