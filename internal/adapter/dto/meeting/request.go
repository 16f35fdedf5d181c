package meeting

import "time"

// CreateMeetingRequest represents the request to book a meeting. At least one
// of graduate_id and company_id must be present; the handler enforces that
// beyond the per-field tags.
type CreateMeetingRequest struct {
	GraduateID   *string   `json:"graduate_id,omitempty" validate:"omitempty,uuid"`
	CompanyID    *string   `json:"company_id,omitempty" validate:"omitempty,uuid"`
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	EndsAt       time.Time `json:"ends_at" validate:"required"`
	Type         string    `json:"type" validate:"required,meeting_type"`
	Observations *string   `json:"observations,omitempty" validate:"omitempty,max=2000"`
}

// RescheduleMeetingRequest represents the request to move a meeting
type RescheduleMeetingRequest struct {
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

// ChangeStatusRequest represents the request to transition a meeting
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,meeting_status"`
}

// ListMeetingsRequest represents the query parameters for listing meetings
type ListMeetingsRequest struct {
	GraduateID *string    `query:"graduate_id" validate:"omitempty,uuid"`
	CompanyID  *string    `query:"company_id" validate:"omitempty,uuid"`
	Type       *string    `query:"type" validate:"omitempty,meeting_type"`
	Status     *string    `query:"status" validate:"omitempty,meeting_status"`
	From       *time.Time `query:"from"`
	To         *time.Time `query:"to"`
	Page       int        `query:"page" validate:"omitempty,min=1"`
	PageSize   int        `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// Normalize applies pagination defaults.
func (r *ListMeetingsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = 20
	}
	if r.PageSize > 100 {
		r.PageSize = 100
	}
}
