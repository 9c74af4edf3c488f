package commands

import (
	"context"

	"classreserve/internal/domain/reservation"
)

// ReservationRepository is the mutation surface of the reservation
// store. The store owns validation and conflict detection; commands add
// the collaborator preconditions around it.
type ReservationRepository interface {
	Create(userID string, classroomID int64, dateStr, startStr, endStr string) (int64, error)
	Cancel(id int64, requestingUserID string) error
	AdminDelete(id int64) bool
}

// ClassroomExistenceChecker is the one thing the reservation flow needs
// from the classroom catalog.
type ClassroomExistenceChecker interface {
	Exists(id int64) bool
}

type CreateReservationParams struct {
	ClassroomID int64
	Date        string
	StartTime   string
	EndTime     string
}

type ReservationCommands interface {
	Create(ctx context.Context, userID string, params CreateReservationParams) (int64, error)
	Cancel(ctx context.Context, id int64, userID string) error
	AdminDelete(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	repo       ReservationRepository
	classrooms ClassroomExistenceChecker
}

func NewReservationCommands(repo ReservationRepository, classrooms ClassroomExistenceChecker) ReservationCommands {
	return &reservationCommandsImpl{
		repo:       repo,
		classrooms: classrooms,
	}
}

// Create checks the classroom exists, then delegates to the store's
// validation pipeline. Store errors are typed sentinels that pass
// through unchanged for the handler to map.
func (r *reservationCommandsImpl) Create(_ context.Context, userID string, params CreateReservationParams) (int64, error) {
	if !r.classrooms.Exists(params.ClassroomID) {
		return 0, ErrClassroomNotFound
	}
	return r.repo.Create(userID, params.ClassroomID, params.Date, params.StartTime, params.EndTime)
}

func (r *reservationCommandsImpl) Cancel(_ context.Context, id int64, userID string) error {
	return r.repo.Cancel(id, userID)
}

func (r *reservationCommandsImpl) AdminDelete(_ context.Context, id int64) error {
	if !r.repo.AdminDelete(id) {
		return reservation.ErrNotFound
	}
	return nil
}
