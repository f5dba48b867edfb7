package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nutriplan/backend/internal/types"
)

func init() {
	// Report violated fields by their JSON names rather than Go field names.
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

// validationDetails translates a binding error into one entry per violated
// field, so a client sees every problem in a single round trip.
func validationDetails(err error) []types.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]types.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, types.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: fieldMessage(fe),
			})
		}
		return details
	}

	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		return []types.FieldError{{
			Field:   terr.Field,
			Message: fmt.Sprintf("must be of type %s", terr.Type.String()),
		}}
	}

	return nil
}

// fieldPath strips the root struct name from a validator namespace,
// e.g. "NutritionRequest.foods[0].item" -> "foods[0].item".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
