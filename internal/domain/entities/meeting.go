package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType represents the category of a meeting
type MeetingType string

const (
	MeetingTypeInterview   MeetingType = "interview"
	MeetingTypeOrientation MeetingType = "orientation"
	MeetingTypeFollowUp    MeetingType = "follow_up"
	MeetingTypeOther       MeetingType = "other"
)

// IsValid checks if the meeting type is one of the allowed categories
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeInterview, MeetingTypeOrientation, MeetingTypeFollowUp, MeetingTypeOther:
		return true
	}
	return false
}

// MeetingStatus represents the current status of a meeting
type MeetingStatus string

const (
	// MeetingStatusScheduled is the normal initial status for confirmed meetings.
	MeetingStatusScheduled MeetingStatus = "scheduled"
	// MeetingStatusInProgress marks a self-requested meeting awaiting staff confirmation.
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusCancelled  MeetingStatus = "cancelled"
)

// IsValid checks if the meeting status is known
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s MeetingStatus) IsTerminal() bool {
	return s == MeetingStatusCompleted || s == MeetingStatusCancelled
}

// IsBlocking reports whether a meeting in this status occupies its time slot
// for conflict-checking purposes. Completed and cancelled meetings do not
// block new bookings.
func (s MeetingStatus) IsBlocking() bool {
	return s == MeetingStatusScheduled || s == MeetingStatusInProgress
}

// CanTransitionTo enforces the meeting state machine:
//
//	in_progress -> scheduled   (staff confirms a self-requested meeting)
//	scheduled   -> completed
//	scheduled   -> cancelled
//	in_progress -> cancelled   (request rejected or withdrawn)
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	switch s {
	case MeetingStatusInProgress:
		return next == MeetingStatusScheduled || next == MeetingStatusCancelled
	case MeetingStatusScheduled:
		return next == MeetingStatusCompleted || next == MeetingStatusCancelled
	}
	return false
}

// CreatorRole records which role initiated a meeting. Informational only.
type CreatorRole string

const (
	CreatorRoleGraduate CreatorRole = "graduate"
	CreatorRoleCompany  CreatorRole = "company"
	CreatorRoleAdmin    CreatorRole = "admin"
)

// IsValid checks if the creator role is known
func (r CreatorRole) IsValid() bool {
	switch r {
	case CreatorRoleGraduate, CreatorRoleCompany, CreatorRoleAdmin:
		return true
	}
	return false
}

// Meeting represents a booked meeting between a graduate and/or a company.
// The interval is half-open: [StartsAt, EndsAt). A meeting may reference only
// one side, e.g. an admin-created meeting with just a company.
type Meeting struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	GraduateID   *uuid.UUID    `gorm:"type:uuid;index" json:"graduate_id,omitempty"`
	Graduate     *Graduate     `gorm:"foreignKey:GraduateID" json:"graduate,omitempty"`
	CompanyID    *uuid.UUID    `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	StartsAt     time.Time     `gorm:"not null;index" json:"starts_at"`
	EndsAt       time.Time     `gorm:"not null" json:"ends_at"`
	Type         MeetingType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Status       MeetingStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Observations *string       `gorm:"type:text" json:"observations,omitempty"`
	CreatedBy    CreatorRole   `gorm:"type:varchar(20);not null" json:"created_by"`
	CreatedAt    time.Time     `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// HasParticipant reports whether at least one side of the meeting is known.
func (m *Meeting) HasParticipant() bool {
	return m.GraduateID != nil || m.CompanyID != nil
}

// IsBlocking reports whether this meeting occupies its slot.
func (m *Meeting) IsBlocking() bool {
	return m.Status.IsBlocking()
}

// Confirm moves a self-requested meeting to scheduled.
func (m *Meeting) Confirm() bool {
	return m.transition(MeetingStatusScheduled)
}

// Complete marks the meeting as done after occurrence.
func (m *Meeting) Complete() bool {
	return m.transition(MeetingStatusCompleted)
}

// Cancel cancels the meeting, preserving the record for history.
func (m *Meeting) Cancel() bool {
	return m.transition(MeetingStatusCancelled)
}

func (m *Meeting) transition(next MeetingStatus) bool {
	if !m.Status.CanTransitionTo(next) {
		return false
	}
	m.Status = next
	m.UpdatedAt = time.Now()
	return true
}
