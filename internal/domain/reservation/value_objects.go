package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidSlot       = errors.New("reservations must be one-hour, on-the-hour blocks")
)

const dateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time with minute precision, no date attached.
type TimeOfDay struct {
	hour   int
	minute int
}

// ParseTimeOfDay accepts "H:MM" or "HH:MM" strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay{hour: hour, minute: minute}, nil
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// Minutes returns minutes since midnight, the comparable form used for
// interval arithmetic.
func (t TimeOfDay) Minutes() int { return t.hour*60 + t.minute }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.hour, t.minute) }

// Date is a calendar date. Parsing normalizes to the canonical ISO form,
// so calendar-equal inputs always compare equal downstream.
type Date struct {
	value time.Time
}

// ParseDate accepts "YYYY-MM-DD" strings.
func ParseDate(s string) (Date, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Date{value: d}, nil
}

func (d Date) String() string { return d.value.Format(dateLayout) }

// At combines the date with a time of day into a local wall-clock instant.
func (d Date) At(t TimeOfDay) time.Time {
	return time.Date(d.value.Year(), d.value.Month(), d.value.Day(), t.hour, t.minute, 0, 0, time.Local)
}

// IsPast reports whether the combined date and start time lies strictly
// before now. Both sides are taken in the same local reference, no
// timezone conversion.
func IsPast(d Date, t TimeOfDay, now time.Time) bool {
	return d.At(t).Before(now)
}

// Slot is a validated one-hour, on-the-hour interval within a single day.
type Slot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewSlot(start, end TimeOfDay) (Slot, error) {
	if !IsValidSlot(start, end) {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{start: start, end: end}, nil
}

// IsValidSlot requires both endpoints on the hour and the end exactly one
// hour after the start. A 23:00 start would wrap past midnight into a
// different calendar date than stored, so it is rejected.
func IsValidSlot(start, end TimeOfDay) bool {
	if start.minute != 0 || end.minute != 0 {
		return false
	}
	return end.hour == start.hour+1
}

// ReconstructSlot rebuilds a stored interval without shape validation.
// Persisted data may predate the one-hour rule; overlap detection must
// still work against it.
func ReconstructSlot(start, end TimeOfDay) Slot {
	return Slot{start: start, end: end}
}

func (s Slot) Start() TimeOfDay { return s.start }
func (s Slot) End() TimeOfDay   { return s.end }

// Overlaps reports whether two half-open [start, end) intervals on the
// same day share any point in time. Intervals that merely touch at an
// endpoint do not overlap. Inputs are not assumed to be on the hour.
func Overlaps(start1, end1, start2, end2 TimeOfDay) bool {
	return start1.Minutes() < end2.Minutes() && start2.Minutes() < end1.Minutes()
}
