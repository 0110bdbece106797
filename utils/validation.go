// utils/validation.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures under the json field names clients actually send.
func init() {
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

// ValidationDetails converts a binding error into per-field messages. Returns
// nil when the error is not a field validation error (e.g. malformed JSON).
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		var msg string
		switch e.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = fmt.Sprintf("must be at least %s characters", e.Param())
		case "gte":
			msg = fmt.Sprintf("must be at least %s", e.Param())
		default:
			msg = fmt.Sprintf("failed %s validation", e.Tag())
		}
		details = append(details, FieldError{Field: e.Field(), Message: msg})
	}
	return details
}
