package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/gymflow/gymflow/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its `validate` tags
// and converts failures into a validation-marked error with per-field
// details.
func ValidateRequest(req any) error {
	if req == nil {
		return ierr.NewError("request cannot be nil").
			WithHint("Request payload is required").
			Mark(ierr.ErrValidation)
	}

	err := instance().Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation)
	}

	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}

	return ierr.WithError(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
