package handler

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/careerlink-team/career-portal/errors"
	meetingDTO "github.com/careerlink-team/career-portal/internal/adapter/dto/meeting"
	"github.com/careerlink-team/career-portal/internal/adapter/presenter"
	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
	"github.com/careerlink-team/career-portal/internal/usecase/meeting"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(service *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// Create books a new meeting
// POST /v1/meetings
func (h *Meeting) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}

	graduateID, err := parseOptionalUUID(req.GraduateID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid graduate_id"))
	}
	companyID, err := parseOptionalUUID(req.CompanyID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid company_id"))
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	m, err := h.service.Schedule(ctx, meeting.ScheduleInput{
		GraduateID:   graduateID,
		CompanyID:    companyID,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Type:         entities.MeetingType(req.Type),
		Observations: req.Observations,
		CreatedBy:    creatorRole(principal.Role),
	})
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Get retrieves one meeting
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	m, err := h.service.Get(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// List retrieves meetings with filters
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}
	req.Normalize()

	filters, err := buildFilters(&req)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid filter parameters"))
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	// Non-admin callers only see their own calendar, whatever filters they
	// send.
	if !principal.IsAdmin() {
		if principal.ProfileID == nil {
			return HandleError(h.logger, c, errors.ErrPermissionDenied("Account has no directory profile"))
		}
		switch principal.Role {
		case entities.RoleGraduate:
			filters.GraduateID = principal.ProfileID
		case entities.RoleCompany:
			filters.CompanyID = principal.ProfileID
		}
	}

	meetings, total, err := h.service.List(ctx, filters)
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings, total, req.Page, req.PageSize))
}

// Reschedule moves a meeting to a new interval
// PUT /v1/meetings/:id
func (h *Meeting) Reschedule(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	var req meetingDTO.RescheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}

	m, err := h.service.Reschedule(ctx, meeting.RescheduleInput{
		ID:       id,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// ChangeStatus applies an explicit status transition
// PATCH /v1/meetings/:id/status
func (h *Meeting) ChangeStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	var req meetingDTO.ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}

	m, err := h.service.ChangeStatus(ctx, id, entities.MeetingStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Confirm accepts a self-requested meeting
// POST /v1/meetings/:id/confirm
func (h *Meeting) Confirm(c echo.Context) error {
	return h.transition(c, h.service.Confirm)
}

// Complete marks a meeting as done
// POST /v1/meetings/:id/complete
func (h *Meeting) Complete(c echo.Context) error {
	return h.transition(c, h.service.Complete)
}

// Cancel cancels a meeting
// POST /v1/meetings/:id/cancel
func (h *Meeting) Cancel(c echo.Context) error {
	return h.transition(c, h.service.Cancel)
}

// Delete removes a meeting entirely. Admin only; cancellation is the normal
// path for everyone else.
// DELETE /v1/meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, map[string]string{"message": "Meeting deleted"})
}

// Remind emits a reminder notification for an upcoming meeting
// POST /v1/meetings/:id/remind
func (h *Meeting) Remind(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	if err := h.service.SendReminder(ctx, id); err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, map[string]string{"message": "Reminder sent"})
}

func (h *Meeting) transition(c echo.Context, op func(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	m, err := op(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, mapMeetingError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

func creatorRole(role entities.UserRole) entities.CreatorRole {
	switch role {
	case entities.RoleGraduate:
		return entities.CreatorRoleGraduate
	case entities.RoleCompany:
		return entities.CreatorRoleCompany
	}
	return entities.CreatorRoleAdmin
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// mapMeetingError translates usecase meeting errors into transport errors.
func mapMeetingError(err error) error {
	var conflict *meeting.ConflictError
	if stdErrors.As(err, &conflict) {
		return errors.ErrMeetingConflict(
			conflict.ConflictingID.String(),
			conflict.StartsAt.Format(time.RFC3339),
			conflict.EndsAt.Format(time.RFC3339),
		)
	}

	var transition *meeting.TransitionError
	if stdErrors.As(err, &transition) {
		return errors.ErrMeetingInvalidTransition(
			transition.MeetingID.String(),
			string(transition.From),
			string(transition.To),
		)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrGraduateNotFound):
		return errors.ErrGraduateNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrCompanyNotFound):
		return errors.ErrCompanyNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInterval):
		return errors.ErrMeetingInvalidInterval("Meeting must start before it ends")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingType):
		return errors.ErrMeetingInvalidType("")
	case stdErrors.Is(err, usecaseErrors.ErrMissingParticipant):
		return errors.ErrMeetingMissingParticipant()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument("Invalid request")
	}
	return errors.ErrInternal(err)
}
