// Package scheduling implements the meeting conflict detector. It is pure:
// no I/O, no clock, deterministic for a given input. Callers are responsible
// for restricting the existing set to blocking records (scheduled or
// in-progress meetings); every booking handed to this package is treated as
// occupying its slot.
package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the slice of a meeting the conflict detector cares about.
// Either participant reference may be nil; a booking that references only one
// side blocks that side's calendar and stays agnostic about the other.
type Booking struct {
	ID         uuid.UUID
	GraduateID *uuid.UUID
	CompanyID  *uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
}

// Zero reports whether the booking covers no time at all. Degenerate
// intervals never conflict; input validation rejects them before booking.
func (b Booking) Zero() bool {
	return !b.StartsAt.Before(b.EndsAt)
}

// Overlaps applies the half-open interval intersection test: [a1, a2) and
// [b1, b2) overlap iff a1 < b2 && a2 > b1. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// sharesAxis decides whether two bookings can collide at all. A booking may
// reference only one side, so the rule is same-participant-or-unspecified:
// when both sides of an axis are present and differ, the bookings belong to
// different calendars on that axis and are skipped entirely.
func sharesAxis(a, b Booking) bool {
	if a.GraduateID != nil && b.GraduateID != nil && *a.GraduateID != *b.GraduateID {
		return false
	}
	if a.CompanyID != nil && b.CompanyID != nil && *a.CompanyID != *b.CompanyID {
		return false
	}
	return true
}

// FindConflict returns the first existing booking whose interval intersects
// the candidate's on a shared participant axis, scanning in slice order.
func FindConflict(candidate Booking, existing []Booking) (Booking, bool) {
	if candidate.Zero() {
		return Booking{}, false
	}
	for _, m := range existing {
		if m.Zero() {
			continue
		}
		if !sharesAxis(candidate, m) {
			continue
		}
		if Overlaps(candidate.StartsAt, candidate.EndsAt, m.StartsAt, m.EndsAt) {
			return m, true
		}
	}
	return Booking{}, false
}

// HasConflict reports whether the candidate double-books any participant.
func HasConflict(candidate Booking, existing []Booking) bool {
	_, found := FindConflict(candidate, existing)
	return found
}
