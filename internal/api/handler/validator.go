package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// ValidationError lists every failed rule of a request.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is one failed rule: the lower-cased field and the validator tag.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.message())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any field failed rule tag.
func (e *ValidationError) Has(tag string) bool {
	for _, fe := range e.Fields {
		if fe.Tag == tag {
			return true
		}
	}
	return false
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := &ValidationError{Fields: make([]FieldError, 0, len(ve))}
			for _, fe := range ve {
				out.Fields = append(out.Fields, FieldError{
					Field: strings.ToLower(fe.Field()),
					Tag:   fe.Tag(),
					Param: fe.Param(),
				})
			}
			return out
		}
		return err
	}
	return nil
}

// message converts a single failed rule into a human-readable message.
func (fe FieldError) message() string {
	switch fe.Tag {
	case "required":
		return fe.Field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field, fe.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field, fe.Param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field, fe.Tag)
	}
}

// loginValidationError maps login request validation failures onto the
// domain errors: a missing field wins over an over-long one.
func loginValidationError(err error) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	if ve.Has("required") {
		return domain.ErrMissingCredentials
	}
	return domain.ErrInvalidCredentialsFormat
}
