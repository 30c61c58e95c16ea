package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindErrorMessage renders a request binding failure as a short client
// message naming the first offending field.
func BindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email", field)
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
		case "min", "max":
			return fmt.Sprintf("%s is out of range (%s %s)", field, fe.Tag(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s has the wrong type", typeErr.Field)
	}
	if strings.Contains(err.Error(), "unknown field") {
		return "Request contains unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	}
	return "Invalid request format"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
