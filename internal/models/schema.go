package models

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"userregistry/internal/refdata"
)

type nowKey struct{}

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidationCtx("adult", func(ctx context.Context, fl validator.FieldLevel) bool {
		dob, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		now, ok := ctx.Value(nowKey{}).(time.Time)
		if !ok {
			now = time.Now()
		}
		return IsAdult(dob, now)
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(Registration)
		if r.Country == "" || r.State == "" {
			return
		}
		if !refdata.IsValidState(r.Country, r.State) {
			sl.ReportError(r.State, "state", "State", "statein", r.Country)
			return
		}
		if r.City != "" && !refdata.IsValidCity(r.Country, r.State, r.City) {
			sl.ReportError(r.City, "city", "City", "cityin", r.State)
		}
	}, Registration{})

	return v
}

// SchemaError lists every field of a record that broke a schema rule.
type SchemaError struct {
	Fields map[string]string
}

func (e *SchemaError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "registration validation failed: " + strings.Join(parts, ", ")
}

// CheckSchema validates a record against the storage rules as of now.
func CheckSchema(r *Registration, now time.Time) error {
	ctx := context.WithValue(context.Background(), nowKey{}, now)
	err := schema.StructCtx(ctx, r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("schema check: %w", err)
	}

	out := &SchemaError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = schemaMessage(fe)
	}
	return out
}

var requiredMessages = map[string]string{
	"fullName":   "Full Name is required",
	"email":      "Email is required",
	"phone":      "Phone number is required",
	"dob":        "Date of Birth is required",
	"gender":     "Gender is required",
	"address1":   "Address Line 1 is required",
	"country":    "Country is required",
	"state":      "State is required",
	"city":       "City is required",
	"zip":        "Zip Code is required",
	"occupation": "Occupation is required",
	"signature":  "Signature is required",
}

func schemaMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return field + " is required"
	case "min", "max":
		if field == "fullName" {
			return fmt.Sprintf("Full Name must be at %s %s characters", map[string]string{"min": "least", "max": "most"}[fe.Tag()], fe.Param())
		}
		if field == "zip" {
			return "Zip code must be 5-6 alphanumeric characters"
		}
		return fmt.Sprintf("Maximum %s characters allowed", fe.Param())
	case "email":
		return "Invalid email format"
	case "len", "number":
		return "Phone number must be 10 digits"
	case "adult":
		return "User must be at least 18 years old"
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid value for %s", fe.Value(), field)
	case "alphanum":
		return "Zip code must be 5-6 alphanumeric characters"
	case "gte":
		return "Income must be a positive number"
	case "statein":
		return fmt.Sprintf("`%v` is not a state of %s", fe.Value(), fe.Param())
	case "cityin":
		return fmt.Sprintf("`%v` is not a city of %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
