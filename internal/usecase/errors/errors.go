package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserInactive       = errors.New("user is not active")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrMeetingConflict    = errors.New("meeting overlaps an existing booking")
	ErrInvalidTransition  = errors.New("illegal meeting status transition")
	ErrInvalidInterval    = errors.New("meeting interval is not chronological")
	ErrInvalidMeetingType = errors.New("unknown meeting type")
	ErrMissingParticipant = errors.New("meeting requires at least one participant")
	ErrGraduateNotFound   = errors.New("graduate not found")
	ErrCompanyNotFound    = errors.New("company not found")
)
