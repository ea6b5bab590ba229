package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names so clients can map errors to inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register slug rule: %v", err))
	}
	return v
}

// Struct validates s and returns an *apperror.Error of kind validation when
// any rule fails.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return FromValidationErrors(verrs)
}

// FromValidationErrors converts validator errors into field messages.
func FromValidationErrors(verrs validator.ValidationErrors) *apperror.Error {
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe.Field())
		fields[name] = append(fields[name], message(name, fe))
	}
	return apperror.Validation(fields)
}

// fieldName strips slice indexes so category_ids[2] reports as category_ids.
func fieldName(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

func message(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "slug":
		return fmt.Sprintf("The %s field must only contain lower-case letters, numbers and single hyphens.", label)
	case "gt":
		return fmt.Sprintf("The %s field must contain valid ids.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
