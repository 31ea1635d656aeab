// Package validate renders binding failures as a field -> messages map so
// clients receive every violation in one response instead of the first.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterJSONTagNames makes the validator report JSON field names instead
// of Go struct field names. Call once at startup.
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Errors flattens a binding error into a map from field name to the list of
// violation messages for that field. Non-validator errors (malformed JSON,
// wrong types) map to a single "body" entry.
func Errors(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = []string{"Invalid request data"}
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for field %s.", fe.Field())
	}
}
