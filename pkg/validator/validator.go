package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the portal's domain tags registered:
// meeting_type and meeting_status validate against the entity enums, so the
// accepted values live in one place.
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("meeting_type", func(fl validator.FieldLevel) bool {
		return entities.MeetingType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("meeting_status", func(fl validator.FieldLevel) bool {
		return entities.MeetingStatus(fl.Field().String()).IsValid()
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
