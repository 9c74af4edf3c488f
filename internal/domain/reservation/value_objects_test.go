//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"classreserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			input  string
			hour   int
			minute int
		}{
			{"00:00", 0, 0},
			{"9:30", 9, 30},
			{"09:30", 9, 30},
			{"23:59", 23, 59},
		}
		for _, tc := range cases {
			t.Run(tc.input, func(t *testing.T) {
				actual, err := reservation.ParseTimeOfDay(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.hour, actual.Hour())
				assert.Equal(t, tc.minute, actual.Minute())
			})
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		cases := []string{
			"",
			"14",
			"14:00:00",
			"24:00",
			"-1:00",
			"14:60",
			"ab:cd",
			"14:0x",
		}
		for _, input := range cases {
			t.Run(input, func(t *testing.T) {
				_, err := reservation.ParseTimeOfDay(input)
				assert.ErrorIs(t, err, reservation.ErrInvalidTimeFormat)
			})
		}
	})

	t.Run("canonical string form", func(t *testing.T) {
		actual, err := reservation.ParseTimeOfDay("9:05")
		require.NoError(t, err)
		assert.Equal(t, "09:05", actual.String())
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		actual, err := reservation.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", actual.String())
	})

	t.Run("invalid dates", func(t *testing.T) {
		cases := []string{
			"",
			"2026/09/15",
			"15-09-2026",
			"2026-13-01",
			"2026-02-30",
			"not-a-date",
		}
		for _, input := range cases {
			t.Run(input, func(t *testing.T) {
				_, err := reservation.ParseDate(input)
				assert.ErrorIs(t, err, reservation.ErrInvalidDateFormat)
			})
		}
	})
}

func TestIsPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name  string
		date  string
		start string
		want  bool
	}{
		{"earlier same day", "2026-09-15", "11:00", true},
		{"exactly now", "2026-09-15", "12:00", false},
		{"later same day", "2026-09-15", "13:00", false},
		{"previous day", "2026-09-14", "23:00", true},
		{"next day", "2026-09-16", "00:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, err := reservation.ParseDate(tc.date)
			require.NoError(t, err)
			start, err := reservation.ParseTimeOfDay(tc.start)
			require.NoError(t, err)

			assert.Equal(t, tc.want, reservation.IsPast(date, start, now))
		})
	}
}

func TestIsValidSlot(t *testing.T) {
	mustTime := func(s string) reservation.TimeOfDay {
		t.Helper()
		tod, err := reservation.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	cases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"first slot of the day", "00:00", "01:00", true},
		{"midday slot", "14:00", "15:00", true},
		{"last slot of the day", "22:00", "23:00", true},
		{"start off the hour", "14:30", "15:30", false},
		{"end off the hour", "14:00", "15:30", false},
		{"two hours", "14:00", "16:00", false},
		{"zero length", "14:00", "14:00", false},
		{"backwards", "15:00", "14:00", false},
		{"midnight wrap", "23:00", "00:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reservation.IsValidSlot(mustTime(tc.start), mustTime(tc.end)))
		})
	}
}

func TestNewSlot(t *testing.T) {
	start, err := reservation.ParseTimeOfDay("14:00")
	require.NoError(t, err)

	t.Run("valid slot", func(t *testing.T) {
		end, err := reservation.ParseTimeOfDay("15:00")
		require.NoError(t, err)

		slot, err := reservation.NewSlot(start, end)
		require.NoError(t, err)
		assert.Equal(t, "14:00", slot.Start().String())
		assert.Equal(t, "15:00", slot.End().String())
	})

	t.Run("invalid shape", func(t *testing.T) {
		end, err := reservation.ParseTimeOfDay("16:00")
		require.NoError(t, err)

		_, err = reservation.NewSlot(start, end)
		assert.ErrorIs(t, err, reservation.ErrInvalidSlot)
	})
}

func TestOverlaps(t *testing.T) {
	mustTime := func(s string) reservation.TimeOfDay {
		t.Helper()
		tod, err := reservation.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	cases := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"identical", "14:00", "15:00", "14:00", "15:00", true},
		{"disjoint", "14:00", "15:00", "16:00", "17:00", false},
		{"touching endpoints", "14:00", "15:00", "15:00", "16:00", false},
		{"partial overlap", "14:00", "15:00", "14:30", "15:30", true},
		{"containment", "14:00", "17:00", "15:00", "16:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.Overlaps(mustTime(tc.start1), mustTime(tc.end1), mustTime(tc.start2), mustTime(tc.end2))
			assert.Equal(t, tc.want, got)

			// symmetric
			swapped := reservation.Overlaps(mustTime(tc.start2), mustTime(tc.end2), mustTime(tc.start1), mustTime(tc.end1))
			assert.Equal(t, tc.want, swapped)
		})
	}
}
