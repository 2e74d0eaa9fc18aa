package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	defIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	clockPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("def_id", func(fl validator.FieldLevel) bool {
			return defIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return clockPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateStruct(kind string, value any) error {
	err := validatorInstance().Struct(value)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		field := fmt.Sprintf("%s.%s", kind, strings.ToLower(first.Field()))
		return deskerrors.NewValidationError(field, describeRule(first), err)
	}

	return deskerrors.NewValidationError(kind, err.Error(), err)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "def_id":
		return fmt.Sprintf("%q is not a valid identifier (lowercase letters, digits, '_', '-')", fe.Value())
	case "clock":
		return fmt.Sprintf("%q is not a valid HH:MM time", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q is not one of: %s", fe.Value(), fe.Param())
	case "min", "max":
		return fmt.Sprintf("value %v violates %s=%s", fe.Value(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
