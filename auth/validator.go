package auth

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("servicename", func(fl validator.FieldLevel) bool {
		return domain.IsValidServiceName(fl.Field().String())
	})
	return v
}

type serviceNameRequest struct {
	Service string `validate:"servicename"`
}

// ValidateCommand checks the shape of a parsed slash command.
func ValidateCommand(req domain.CommandRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}

// ValidateServiceName only accepts letters, digits, dashes and underscores.
// An empty name is invalid.
func ValidateServiceName(service string) error {
	if err := validate.Struct(serviceNameRequest{Service: service}); err != nil {
		return fmt.Errorf("%w: %q", errors.ErrInvalidServiceName, service)
	}
	return nil
}
