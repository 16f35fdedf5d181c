package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/careerlink-team/career-portal/errors"
	meetingDTO "github.com/careerlink-team/career-portal/internal/adapter/dto/meeting"
	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
)

// buildFilters converts ListMeetingsRequest to repository filters
func buildFilters(req *meetingDTO.ListMeetingsRequest) (repositories.MeetingFilters, error) {
	filters := repositories.MeetingFilters{
		From:   req.From,
		To:     req.To,
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	}

	if req.GraduateID != nil {
		id, err := uuid.Parse(*req.GraduateID)
		if err != nil {
			return filters, err
		}
		filters.GraduateID = &id
	}
	if req.CompanyID != nil {
		id, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return filters, err
		}
		filters.CompanyID = &id
	}
	if req.Type != nil {
		meetingType := entities.MeetingType(*req.Type)
		filters.Type = &meetingType
	}
	if req.Status != nil {
		status := entities.MeetingStatus(*req.Status)
		filters.Status = &status
	}

	return filters, nil
}

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Info    string            `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}
