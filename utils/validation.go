package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation errors under the JSON field names the client sent,
	// not the Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatValidationErrors converts a ShouldBindJSON error into the API's
// field -> messages error body, e.g.
//
//	{"title": ["Missing data for required field."]}
//
// The message wording is part of the public API contract and must stay stable.
// Errors that are not field-level (malformed JSON, wrong value types) are
// reported under the "_schema" key.
func FormatValidationErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := fe.Field()
			if field == "" {
				field = strings.ToLower(fe.StructField())
			}
			out[field] = append(out[field], validationMessage(fe))
		}
		return out
	}

	out["_schema"] = []string{"Invalid input."}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	case "email":
		return "Not a valid email address."
	case "url":
		return "Not a valid URL."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	default:
		return "Invalid value."
	}
}
