package reservation

import (
	"errors"
	"time"
)

var (
	ErrPastTime     = errors.New("past times are not reservable")
	ErrSlotConflict = errors.New("slot already booked")
	ErrNotFound     = errors.New("reservation not found")
	ErrNotOwner     = errors.New("only the owner may cancel a reservation")
)

// Reservation is a single one-hour booking of a classroom. It is never
// mutated after creation; cancel-and-recreate is the only way to change
// a booking.
type Reservation struct {
	id          int64
	userID      string
	classroomID int64
	date        Date
	slot        Slot
}

// NewReservation runs the candidate validation pipeline: parse the date
// and both times, reject past start instants, then check the slot shape.
// Failures short-circuit in that order. The id stays zero until the
// store assigns one; conflict detection is the store's concern.
func NewReservation(userID string, classroomID int64, dateStr, startStr, endStr string, now time.Time) (*Reservation, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return nil, err
	}

	if IsPast(date, start, now) {
		return nil, ErrPastTime
	}

	slot, err := NewSlot(start, end)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		userID:      userID,
		classroomID: classroomID,
		date:        date,
		slot:        slot,
	}, nil
}

// ReconstructReservation rebuilds a persisted reservation without
// re-running the creation pipeline.
func ReconstructReservation(id int64, userID string, classroomID int64, date Date, slot Slot) *Reservation {
	return &Reservation{
		id:          id,
		userID:      userID,
		classroomID: classroomID,
		date:        date,
		slot:        slot,
	}
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) UserID() string     { return r.userID }
func (r *Reservation) ClassroomID() int64 { return r.classroomID }
func (r *Reservation) Date() Date         { return r.date }
func (r *Reservation) Slot() Slot         { return r.slot }

func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.userID == userID
}

// ConflictsWith reports whether two reservations compete for the same
// classroom at the same time. Dates compare by their canonical string
// form.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.classroomID != other.classroomID || r.date.String() != other.date.String() {
		return false
	}
	return Overlaps(r.slot.start, r.slot.end, other.slot.start, other.slot.end)
}
