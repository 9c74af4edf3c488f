package filestore

import (
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"classreserve/internal/domain/reservation"
	"classreserve/internal/pkg/clock"
)

type reservationRecord struct {
	UserID      string `json:"user_id"`
	ClassroomID int64  `json:"classroom_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type reservationsDocument struct {
	Reservations map[string]reservationRecord `json:"reservations"`
	NextID       int64                        `json:"next_id"`
}

// ReservationStore owns the authoritative reservation map and the
// monotonic id counter. All mutations run under one mutex so the
// scan-for-conflict-then-insert sequence in Create is atomic, and each
// mutation rewrites the backing JSON document in full.
type ReservationStore struct {
	mu           sync.Mutex
	path         string
	clock        clock.Clock
	reservations map[int64]*reservation.Reservation
	nextID       int64
}

func NewReservationStore(path string, clk clock.Clock) *ReservationStore {
	s := &ReservationStore{
		path:         path,
		clock:        clk,
		reservations: make(map[int64]*reservation.Reservation),
		nextID:       1,
	}
	s.load()
	return s
}

func (s *ReservationStore) load() {
	var doc reservationsDocument
	if !loadJSON(s.path, &doc) {
		return
	}
	if doc.NextID >= 1 {
		s.nextID = doc.NextID
	}
	for key, rec := range doc.Reservations {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			slog.Warn("skipping reservation with non-numeric id", "key", key)
			continue
		}
		res, err := recordToReservation(id, rec)
		if err != nil {
			slog.Warn("skipping unreadable reservation", "id", id, "error", err)
			continue
		}
		s.reservations[id] = res
	}
}

func recordToReservation(id int64, rec reservationRecord) (*reservation.Reservation, error) {
	date, err := reservation.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}
	start, err := reservation.ParseTimeOfDay(rec.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := reservation.ParseTimeOfDay(rec.EndTime)
	if err != nil {
		return nil, err
	}
	// Stored intervals bypass the slot-shape check: legacy data may not
	// be one-hour blocks, but must still count for conflicts.
	slot := reservation.ReconstructSlot(start, end)
	return reservation.ReconstructReservation(id, rec.UserID, rec.ClassroomID, date, slot), nil
}

func reservationToRecord(r *reservation.Reservation) reservationRecord {
	return reservationRecord{
		UserID:      r.UserID(),
		ClassroomID: r.ClassroomID(),
		Date:        r.Date().String(),
		StartTime:   r.Slot().Start().String(),
		EndTime:     r.Slot().End().String(),
	}
}

func (s *ReservationStore) flushLocked() {
	doc := reservationsDocument{
		Reservations: make(map[string]reservationRecord, len(s.reservations)),
		NextID:       s.nextID,
	}
	for id, r := range s.reservations {
		doc.Reservations[strconv.FormatInt(id, 10)] = reservationToRecord(r)
	}
	flushJSON(s.path, doc)
}

// Create validates the candidate booking and inserts it if no live
// reservation for the same classroom and date overlaps. Classroom
// existence is the caller's precondition. Returns the assigned id.
func (s *ReservationStore) Create(userID string, classroomID int64, dateStr, startStr, endStr string) (int64, error) {
	candidate, err := reservation.NewReservation(userID, classroomID, dateStr, startStr, endStr, s.clock.Now())
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reservations {
		if candidate.ConflictsWith(existing) {
			return 0, reservation.ErrSlotConflict
		}
	}

	id := s.nextID
	s.nextID++
	s.reservations[id] = reservation.ReconstructReservation(
		id, candidate.UserID(), candidate.ClassroomID(), candidate.Date(), candidate.Slot(),
	)
	s.flushLocked()
	return id, nil
}

// Cancel removes the reservation if it exists and the requesting user
// owns it. Removal is permanent; the id is never reassigned because the
// counter only moves forward.
func (s *ReservationStore) Cancel(id int64, requestingUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return reservation.ErrNotFound
	}
	if !res.IsOwnedBy(requestingUserID) {
		return reservation.ErrNotOwner
	}

	delete(s.reservations, id)
	s.flushLocked()
	return nil
}

// AdminDelete removes the reservation regardless of ownership and
// reports whether one existed.
func (s *ReservationStore) AdminDelete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return false
	}
	delete(s.reservations, id)
	s.flushLocked()
	return true
}

func (s *ReservationStore) Get(id int64) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	return res, ok
}

// ByUser returns the user's reservations in storage order; callers sort
// for presentation.
func (s *ReservationStore) ByUser(userID string) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.UserID() == userID {
			out = append(out, r)
		}
	}
	return out
}

// ByClassroom returns the classroom's reservations, filtered by exact
// date match when date is non-nil, sorted ascending by (date, start).
// The ordering is a guarantee of this operation.
func (s *ReservationStore) ByClassroom(classroomID int64, date *string) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.ClassroomID() != classroomID {
			continue
		}
		if date != nil && r.Date().String() != *date {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date().String() != out[j].Date().String() {
			return out[i].Date().String() < out[j].Date().String()
		}
		return out[i].Slot().Start().Minutes() < out[j].Slot().Start().Minutes()
	})
	return out
}
