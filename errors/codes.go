package errors

// ErrorCode identifies an application error category. Codes are stable across
// releases; clients match on these rather than on messages.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1004
	ErrorCode_VALIDATION_FAILED ErrorCode = 1005

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002

	// Meetings
	ErrorCode_MEETING_NOT_FOUND           ErrorCode = 3000
	ErrorCode_MEETING_CONFLICT            ErrorCode = 3001
	ErrorCode_MEETING_INVALID_TRANSITION  ErrorCode = 3002
	ErrorCode_MEETING_INVALID_INTERVAL    ErrorCode = 3003
	ErrorCode_MEETING_INVALID_TYPE        ErrorCode = 3004
	ErrorCode_MEETING_MISSING_PARTICIPANT ErrorCode = 3005

	// Participant directory
	ErrorCode_GRADUATE_NOT_FOUND ErrorCode = 3100
	ErrorCode_COMPANY_NOT_FOUND  ErrorCode = 3101
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                     "OK",
	ErrorCode_INTERNAL:                    "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:            "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                   "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:           "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:             "UNAUTHENTICATED",
	ErrorCode_VALIDATION_FAILED:           "VALIDATION_FAILED",
	ErrorCode_AUTH_INVALID_TOKEN:          "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:          "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:    "AUTH_INVALID_CREDENTIALS",
	ErrorCode_MEETING_NOT_FOUND:           "MEETING_NOT_FOUND",
	ErrorCode_MEETING_CONFLICT:            "MEETING_CONFLICT",
	ErrorCode_MEETING_INVALID_TRANSITION:  "MEETING_INVALID_TRANSITION",
	ErrorCode_MEETING_INVALID_INTERVAL:    "MEETING_INVALID_INTERVAL",
	ErrorCode_MEETING_INVALID_TYPE:        "MEETING_INVALID_TYPE",
	ErrorCode_MEETING_MISSING_PARTICIPANT: "MEETING_MISSING_PARTICIPANT",
	ErrorCode_GRADUATE_NOT_FOUND:          "GRADUATE_NOT_FOUND",
	ErrorCode_COMPANY_NOT_FOUND:           "COMPANY_NOT_FOUND",
}

// String returns the symbolic name for the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
