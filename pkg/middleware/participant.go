package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httpMiddleware "github.com/careerlink-team/career-portal/internal/infrastructure/http/middleware"
	"github.com/careerlink-team/career-portal/internal/usecase/meeting"
)

// RequireMeetingAccess middleware: only admins and the meeting's own
// participants may act on a meeting addressed by :id. Graduate and company
// accounts are matched through their directory profile.
func RequireMeetingAccess(meetingService *meeting.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := httpMiddleware.GetPrincipal(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "unauthorized",
					"message": "user not authenticated",
				})
			}
			if principal.IsAdmin() {
				return next(c)
			}

			meetingID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"error":   "invalid_meeting_id",
					"message": "meeting ID must be a valid UUID",
				})
			}

			m, err := meetingService.Get(c.Request().Context(), meetingID)
			if err != nil {
				return c.JSON(http.StatusNotFound, map[string]interface{}{
					"error":   "meeting_not_found",
					"message": err.Error(),
				})
			}

			if principal.ProfileID != nil {
				if m.GraduateID != nil && *m.GraduateID == *principal.ProfileID {
					return next(c)
				}
				if m.CompanyID != nil && *m.CompanyID == *principal.ProfileID {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error":   "not_participant",
				"message": "user is not a participant of this meeting",
			})
		}
	}
}
