package reservation

import "coworking-booking/internal/domain/calendar"

// HasConflict reports whether [start, end) overlaps any active reservation of
// roomID on date. excludeID skips a reservation being re-validated.
func HasConflict(existing []*Reservation, roomID string, date calendar.CivilDate, start, end calendar.TimeOfDay, excludeID string) bool {
	return FindConflict(existing, roomID, date, start, end, excludeID) != nil
}

// FindConflict returns the first overlapping reservation, or nil.
func FindConflict(existing []*Reservation, roomID string, date calendar.CivilDate, start, end calendar.TimeOfDay, excludeID string) *Reservation {
	for _, c := range existing {
		if c == nil || c.roomID != roomID || c.Date() != date || c.IsCancelled() {
			continue
		}
		if excludeID != "" && c.id == excludeID {
			continue
		}
		if c.Start().Before(end) && start.Before(c.End()) {
			return c
		}
	}
	return nil
}
