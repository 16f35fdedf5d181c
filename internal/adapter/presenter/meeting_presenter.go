package presenter

import (
	"github.com/careerlink-team/career-portal/internal/adapter/dto/common"
	meetingDTO "github.com/careerlink-team/career-portal/internal/adapter/dto/meeting"
	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to its response DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	resp := &meetingDTO.MeetingResponse{
		ID:           m.ID.String(),
		StartsAt:     m.StartsAt,
		EndsAt:       m.EndsAt,
		Type:         string(m.Type),
		Status:       string(m.Status),
		Observations: m.Observations,
		CreatedBy:    string(m.CreatedBy),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.Graduate != nil {
		resp.Graduate = &meetingDTO.ParticipantResponse{
			ID:    m.Graduate.ID.String(),
			Name:  m.Graduate.Name,
			Email: m.Graduate.Email,
		}
	} else if m.GraduateID != nil {
		// Preload may be skipped on write paths; expose the id regardless.
		resp.Graduate = &meetingDTO.ParticipantResponse{ID: m.GraduateID.String()}
	}
	if m.Company != nil {
		resp.Company = &meetingDTO.ParticipantResponse{
			ID:    m.Company.ID.String(),
			Name:  m.Company.Name,
			Email: m.Company.Email,
		}
	} else if m.CompanyID != nil {
		resp.Company = &meetingDTO.ParticipantResponse{ID: m.CompanyID.String()}
	}

	return resp
}

// ToMeetingListResponse converts meetings plus pagination metadata to the
// list payload
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, pageSize int) *meetingDTO.ListMeetingsResponse {
	items := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, ToMeetingResponse(m))
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &meetingDTO.ListMeetingsResponse{
		Meetings: items,
		Pagination: &common.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	}
}
