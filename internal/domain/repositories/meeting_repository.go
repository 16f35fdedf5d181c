package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access. The
// lifecycle manager is the only writer path; nothing else mutates meetings.
type MeetingRepository interface {
	// Insert persists a new meeting
	Insert(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes the record entirely (administrative hard delete,
	// distinct from cancellation which preserves history)
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings with filters, ordered by descending creation
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// FindBlocking retrieves every meeting in a blocking status (scheduled or
	// in_progress) involving the given graduate and/or company. Nil ids are
	// skipped; passing both returns the union of the two participant axes.
	FindBlocking(ctx context.Context, graduateID, companyID *uuid.UUID) ([]*entities.Meeting, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	GraduateID *uuid.UUID
	CompanyID  *uuid.UUID
	Type       *entities.MeetingType
	Status     *entities.MeetingStatus
	From       *time.Time // inclusive lower bound on starts_at
	To         *time.Time // exclusive upper bound on starts_at
	Limit      int
	Offset     int
}
