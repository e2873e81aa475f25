package serverutils

import (
	"fmt"
	"reflect"
	"strings"

	"student-notes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as their json tag so error messages match the
	// wire format the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest runs struct tag validation on a request DTO and converts
// the outcome into the application's validation error type.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var messages []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			switch e.ActualTag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return apperror.NewValidation(strings.Join(messages, ", "))
	}

	return apperror.NewValidation("invalid request body")
}
