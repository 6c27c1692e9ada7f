package validate

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.BloodGroups, fl.Field().String())
	})
	return v
}

// Struct checks the validate tags of s and flattens failures into one
// human readable message.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "bloodgroup":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(domain.BloodGroups, ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
