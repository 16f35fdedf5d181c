package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/careerlink-team/career-portal/errors"
	authDTO "github.com/careerlink-team/career-portal/internal/adapter/dto/auth"
	"github.com/careerlink-team/career-portal/internal/adapter/presenter"
	"github.com/careerlink-team/career-portal/internal/infrastructure/http/middleware"
	"github.com/careerlink-team/career-portal/internal/usecase/auth"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user with email and password
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}

	resp, err := h.authService.Login(ctx, &auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, mapAuthError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Refresh exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *Auth) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err.Error()))
	}

	resp, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, mapAuthError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Logout closes the caller's session
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.authService.Logout(ctx, principal.SessionID); err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, map[string]string{"message": "Logged out successfully"})
}

// Me returns the current user information
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	ctx := c.Request().Context()

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.authService.CurrentUser(ctx, principal)
	if err != nil {
		return HandleError(h.logger, c, mapAuthError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user.ToPublic()))
}

// mapAuthError translates usecase auth errors into transport errors.
func mapAuthError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrUserInactive):
		return errors.ErrPermissionDenied("Account is deactivated")
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrSessionExpired), stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		return errors.ErrTokenExpired()
	}
	return errors.ErrInternal(err)
}
