//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"classreserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)

type reservationCase struct {
	name  string
	date  string
	start string
	end   string
	errIs error
}

func TestNewReservation(t *testing.T) {
	t.Run("valid reservation", func(t *testing.T) {
		actual, err := reservation.NewReservation("alice", 1, "2026-09-16", "14:00", "15:00", testNow)
		require.NoError(t, err)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, "alice", actual.UserID())
		assert.Equal(t, int64(1), actual.ClassroomID())
		assert.Equal(t, "2026-09-16", actual.Date().String())
		assert.Equal(t, "14:00", actual.Slot().Start().String())
		assert.Equal(t, "15:00", actual.Slot().End().String())
	})

	t.Run("validation pipeline", func(t *testing.T) {
		cases := []reservationCase{
			{
				name: "bad date", date: "16-09-2026", start: "14:00", end: "15:00",
				errIs: reservation.ErrInvalidDateFormat,
			},
			{
				name: "bad start time", date: "2026-09-16", start: "25:00", end: "15:00",
				errIs: reservation.ErrInvalidTimeFormat,
			},
			{
				name: "bad end time", date: "2026-09-16", start: "14:00", end: "15",
				errIs: reservation.ErrInvalidTimeFormat,
			},
			{
				name: "past start", date: "2026-09-15", start: "11:00", end: "12:00",
				errIs: reservation.ErrPastTime,
			},
			{
				name: "multi-hour slot", date: "2026-09-16", start: "14:00", end: "16:00",
				errIs: reservation.ErrInvalidSlot,
			},
			{
				name: "off-hour slot", date: "2026-09-16", start: "14:30", end: "15:30",
				errIs: reservation.ErrInvalidSlot,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewReservation("alice", 1, tc.date, tc.start, tc.end, testNow)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("past check runs before slot shape check", func(t *testing.T) {
		// both violations present; the past one must win
		_, err := reservation.NewReservation("alice", 1, "2026-09-15", "10:00", "13:00", testNow)
		assert.ErrorIs(t, err, reservation.ErrPastTime)
	})
}

func TestIsOwnedBy(t *testing.T) {
	actual, err := reservation.NewReservation("alice", 1, "2026-09-16", "14:00", "15:00", testNow)
	require.NoError(t, err)

	assert.True(t, actual.IsOwnedBy("alice"))
	assert.False(t, actual.IsOwnedBy("bob"))
}

func TestConflictsWith(t *testing.T) {
	build := func(classroomID int64, date, start, end string) *reservation.Reservation {
		t.Helper()
		r, err := reservation.NewReservation("alice", classroomID, date, start, end, testNow)
		require.NoError(t, err)
		return r
	}

	base := build(1, "2026-09-16", "14:00", "15:00")

	t.Run("same classroom, same slot", func(t *testing.T) {
		assert.True(t, base.ConflictsWith(build(1, "2026-09-16", "14:00", "15:00")))
	})

	t.Run("different classroom", func(t *testing.T) {
		assert.False(t, base.ConflictsWith(build(2, "2026-09-16", "14:00", "15:00")))
	})

	t.Run("different date", func(t *testing.T) {
		assert.False(t, base.ConflictsWith(build(1, "2026-09-17", "14:00", "15:00")))
	})

	t.Run("adjacent slot", func(t *testing.T) {
		assert.False(t, base.ConflictsWith(build(1, "2026-09-16", "15:00", "16:00")))
	})

	t.Run("legacy multi-hour interval still conflicts", func(t *testing.T) {
		start, err := reservation.ParseTimeOfDay("13:00")
		require.NoError(t, err)
		end, err := reservation.ParseTimeOfDay("16:00")
		require.NoError(t, err)
		date, err := reservation.ParseDate("2026-09-16")
		require.NoError(t, err)

		legacy := reservation.ReconstructReservation(7, "bob", 1, date, reservation.ReconstructSlot(start, end))
		assert.True(t, base.ConflictsWith(legacy))
		assert.True(t, legacy.ConflictsWith(base))
	})
}
