package services

import (
	"fmt"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// selfValidator is implemented by request DTOs with rules beyond struct tags.
type selfValidator interface {
	Validate() error
}

// newRequestValidator reads the same `binding` tags gin uses on the server,
// so both sides reject the same payloads.
func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// validateRequest runs tag validation and then the request's own rules.
// Every failure wraps apperrors.ErrValidation.
func validateRequest(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidation(err))
	}
	if sv, ok := req.(selfValidator); ok {
		if err := sv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
}
