package meeting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
)

// ConflictError reports an overlapping booking with enough detail for the UI
// to suggest another slot. It matches usecaseErrors.ErrMeetingConflict under
// errors.Is.
type ConflictError struct {
	ConflictingID uuid.UUID
	StartsAt      time.Time
	EndsAt        time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("meeting overlaps existing booking %s [%s, %s)",
		e.ConflictingID,
		e.StartsAt.Format(time.RFC3339),
		e.EndsAt.Format(time.RFC3339))
}

// Is lets errors.Is(err, usecaseErrors.ErrMeetingConflict) succeed.
func (e *ConflictError) Is(target error) bool {
	return target == usecaseErrors.ErrMeetingConflict
}

// TransitionError reports an illegal status change request.
type TransitionError struct {
	MeetingID uuid.UUID
	From      entities.MeetingStatus
	To        entities.MeetingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("meeting %s: illegal transition %s -> %s", e.MeetingID, e.From, e.To)
}

// Is lets errors.Is(err, usecaseErrors.ErrInvalidTransition) succeed.
func (e *TransitionError) Is(target error) bool {
	return target == usecaseErrors.ErrInvalidTransition
}
