package meeting

import (
	"time"

	"github.com/careerlink-team/career-portal/internal/adapter/dto/common"
)

// ParticipantResponse is the embedded directory record on a meeting response
type ParticipantResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID           string               `json:"id"`
	Graduate     *ParticipantResponse `json:"graduate,omitempty"`
	Company      *ParticipantResponse `json:"company,omitempty"`
	StartsAt     time.Time            `json:"starts_at"`
	EndsAt       time.Time            `json:"ends_at"`
	Type         string               `json:"type"`
	Status       string               `json:"status"`
	Observations *string              `json:"observations,omitempty"`
	CreatedBy    string               `json:"created_by"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ListMeetingsResponse is the paginated list payload
type ListMeetingsResponse struct {
	Meetings   []*MeetingResponse         `json:"meetings"`
	Pagination *common.PaginationResponse `json:"pagination"`
}
