package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	gradA = uuid.MustParse("00000000-0000-0000-0000-000000000007")
	gradB = uuid.MustParse("00000000-0000-0000-0000-000000000009")
	compA = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	compB = uuid.MustParse("00000000-0000-0000-0000-000000000004")
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 10, hour, min, 0, 0, time.UTC)
}

func booking(grad, comp *uuid.UUID, start, end time.Time) Booking {
	return Booking{ID: uuid.New(), GraduateID: grad, CompanyID: comp, StartsAt: start, EndsAt: end}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate Booking
		existing  []Booking
		want      bool
	}{
		{
			name:      "same graduate overlapping intervals",
			candidate: booking(&gradA, nil, at(10, 30), at(11, 30)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      true,
		},
		{
			name:      "same graduate touching endpoints",
			candidate: booking(&gradA, nil, at(11, 0), at(12, 0)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      false,
		},
		{
			name:      "same graduate identical interval",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      true,
		},
		{
			name:      "different graduates same interval",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradB, nil, at(10, 0), at(11, 0))},
			want:      false,
		},
		{
			name:      "same company overlapping intervals",
			candidate: booking(nil, &compA, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(nil, &compA, at(10, 30), at(11, 30))},
			want:      true,
		},
		{
			name:      "different participants on both axes never conflict",
			candidate: booking(&gradA, &compA, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradB, &compB, at(10, 0), at(11, 0))},
			want:      false,
		},
		{
			// The canonical skip-order regression: both graduate ids present
			// and different means the whole record is skipped, even though
			// the company matches.
			name:      "different graduates skip despite shared company",
			candidate: booking(&gradA, &compA, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradB, &compA, at(10, 0), at(11, 0))},
			want:      false,
		},
		{
			name:      "unspecified graduate side collides on company axis",
			candidate: booking(&gradA, &compA, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(nil, &compA, at(10, 0), at(11, 0))},
			want:      true,
		},
		{
			name:      "unspecified company side collides on graduate axis",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradA, &compB, at(10, 30), at(11, 0))},
			want:      true,
		},
		{
			name:      "candidate contained within existing",
			candidate: booking(&gradA, nil, at(10, 15), at(10, 45)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      true,
		},
		{
			name:      "existing contained within candidate",
			candidate: booking(&gradA, nil, at(9, 0), at(12, 0)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      true,
		},
		{
			name:      "zero duration candidate never conflicts",
			candidate: booking(&gradA, nil, at(10, 30), at(10, 30)),
			existing:  []Booking{booking(&gradA, nil, at(10, 0), at(11, 0))},
			want:      false,
		},
		{
			name:      "zero duration existing record is ignored",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing:  []Booking{booking(&gradA, nil, at(10, 30), at(10, 30))},
			want:      false,
		},
		{
			name:      "empty existing set",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing:  nil,
			want:      false,
		},
		{
			name:      "conflict found after non-matching records",
			candidate: booking(&gradA, nil, at(10, 0), at(11, 0)),
			existing: []Booking{
				booking(&gradB, nil, at(10, 0), at(11, 0)),
				booking(&gradA, nil, at(8, 0), at(9, 0)),
				booking(&gradA, nil, at(10, 45), at(11, 45)),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.candidate, tt.existing); got != tt.want {
				t.Fatalf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflictReturnsOffendingBooking(t *testing.T) {
	blocked := booking(&gradA, nil, at(10, 0), at(11, 0))
	candidate := booking(&gradA, nil, at(10, 30), at(11, 30))

	found, ok := FindConflict(candidate, []Booking{blocked})
	if !ok {
		t.Fatal("expected a conflict")
	}
	if found.ID != blocked.ID {
		t.Fatalf("expected conflicting booking %s, got %s", blocked.ID, found.ID)
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	if Overlaps(at(10, 0), at(11, 0), at(11, 0), at(12, 0)) {
		t.Fatal("touching endpoints must not overlap")
	}
	if !Overlaps(at(10, 0), at(11, 0), at(10, 59), at(12, 0)) {
		t.Fatal("one minute of shared interior must overlap")
	}
}
