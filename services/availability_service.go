package services

import (
	"time"

	"github.com/goldenpalm/resort_backend/models"
)

// Room booking intervals are half-open [checkIn, checkOut): a guest checking
// out on day X never conflicts with a guest checking in on day X. Event time
// ranges use the same rule on "HH:MM" wall-clock strings within one date.

// roomOccupyingStatuses are the statuses that make a room booking count when
// listing browsable availability. A specific booking request is checked
// against the stricter non-CANCELLED set instead (HasRoomConflict).
var roomOccupyingStatuses = []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}

var eventOccupyingStatuses = []string{models.EventBookingStatusConfirmed, models.EventBookingStatusInProgress}

func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// timesOverlap compares zero-padded "HH:MM" strings; lexicographic order is
// chronological order for that format.
func timesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasRoomConflict reports whether any existing non-cancelled booking overlaps
// the requested [checkIn, checkOut) interval. An empty booking set never
// conflicts.
func HasRoomConflict(existing []models.Booking, checkIn, checkOut time.Time) bool {
	return hasRoomConflictWithStatuses(existing, checkIn, checkOut, nil)
}

// hasRoomConflictWithStatuses counts only bookings whose status is in
// occupying; a nil set means "every status except CANCELLED".
func hasRoomConflictWithStatuses(existing []models.Booking, checkIn, checkOut time.Time, occupying []string) bool {
	for _, b := range existing {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if occupying != nil && !containsStatus(occupying, b.Status) {
			continue
		}
		if datesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return true
		}
	}
	return false
}

// HasEventConflict reports whether any non-cancelled event booking occupies
// the space on the same date with an overlapping [start, end) time range.
func HasEventConflict(existing []models.EventBooking, eventDate time.Time, startTime, endTime string) bool {
	return hasEventConflictWithStatuses(existing, eventDate, startTime, endTime, nil)
}

func hasEventConflictWithStatuses(existing []models.EventBooking, eventDate time.Time, startTime, endTime string, occupying []string) bool {
	for _, b := range existing {
		if b.Status == models.EventBookingStatusCancelled {
			continue
		}
		if occupying != nil && !containsStatus(occupying, b.Status) {
			continue
		}
		if !sameDate(b.EventDate, eventDate) {
			continue
		}
		if timesOverlap(startTime, endTime, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// FilterAvailableRooms returns the candidate rooms that are active, marked
// AVAILABLE, hold at least minCapacity guests, and have no occupying booking
// overlapping the requested interval. Input order is preserved.
func FilterAvailableRooms(candidates []models.Room, bookingsByRoom map[string][]models.Booking, checkIn, checkOut time.Time, minCapacity int) []models.Room {
	available := make([]models.Room, 0, len(candidates))
	for _, room := range candidates {
		if !room.IsActive || room.Status != models.RoomStatusAvailable {
			continue
		}
		if room.Capacity < minCapacity {
			continue
		}
		if hasRoomConflictWithStatuses(bookingsByRoom[room.ID.String()], checkIn, checkOut, roomOccupyingStatuses) {
			continue
		}
		available = append(available, room)
	}
	return available
}

// FilterAvailableEventSpaces mirrors FilterAvailableRooms for event spaces.
// The space status field is a coarse hint; the overlap check against
// occupying event bookings is authoritative.
func FilterAvailableEventSpaces(candidates []models.EventSpace, bookingsBySpace map[string][]models.EventBooking, eventDate time.Time, startTime, endTime string, minCapacity int) []models.EventSpace {
	available := make([]models.EventSpace, 0, len(candidates))
	for _, space := range candidates {
		if !space.IsActive || space.Status != models.EventSpaceStatusAvailable {
			continue
		}
		if space.Capacity < minCapacity {
			continue
		}
		if hasEventConflictWithStatuses(bookingsBySpace[space.ID.String()], eventDate, startTime, endTime, eventOccupyingStatuses) {
			continue
		}
		available = append(available, space)
	}
	return available
}

func containsStatus(set []string, status string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// dateOnly truncates a timestamp to its calendar date in UTC, the resolution
// room booking intervals are compared at.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
