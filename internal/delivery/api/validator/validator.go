// Package validator plugs go-playground/validator into echo's request validation.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator. Field names in errors follow the json tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt limits input by bytes, not characters.
	_ = v.RegisterValidation("maxbytes", validateMaxBytes)

	return &CustomValidator{validate: v}
}

// Validate checks the struct against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// Describe turns validation failures into one message per field.
func Describe(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "max":
			out[fe.Field()] = fmt.Sprintf("must be at most %s characters long", fe.Param())
		case "maxbytes":
			out[fe.Field()] = fmt.Sprintf("must be at most %s bytes long", fe.Param())
		case "required":
			out[fe.Field()] = "is required"
		default:
			out[fe.Field()] = fmt.Sprintf("failed the %q check", fe.Tag())
		}
	}

	return out
}
