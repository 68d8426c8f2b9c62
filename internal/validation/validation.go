// Package validation checks operation inputs against the entity model
// before anything reaches a repository.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

// underlying is implemented by models.Optional and models.Nullable.
type underlying interface {
	Underlying() any
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator aware of the model's field wrapper types
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		m := field.Interface().(models.Money)
		f, _ := m.Float64()
		return f
	}, models.Money{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(models.Date).Time
	}, models.Date{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if u, ok := field.Interface().(underlying); ok {
			return u.Underlying()
		}
		return nil
	},
		models.Optional[string]{},
		models.Optional[bool]{},
		models.Optional[models.Money]{},
		models.Optional[models.Priority]{},
		models.Nullable[string]{},
		models.Nullable[models.Date]{},
		models.Nullable[models.Money]{},
	)

	return &Validator{validate: v}
}

// Struct validates s and returns an *apperr.Error naming the first bad field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperr.Validation(fe.Field(), describeTag(fe))
	}
	return apperr.Validation("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must not be empty"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// Decode parses a JSON payload into dst. Unknown keys are ignored; type
// mismatches and malformed JSON become validation errors. An empty payload
// decodes as an empty object.
func Decode(data []byte, dst any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		data = []byte("{}")
	}
	err := json.Unmarshal(data, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.Validation(typeErr.Field, fmt.Sprintf("expected %s, got %s", describeType(typeErr.Type), typeErr.Value))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperr.Validation("", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}
	return apperr.Validation("", err.Error())
}

var (
	moneyType = reflect.TypeOf(models.Money{})
	dateType  = reflect.TypeOf(models.Date{})
	timeType  = reflect.TypeOf(time.Time{})
)

func describeType(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t {
	case moneyType:
		return "number"
	case dateType, timeType:
		return "date"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Ptr:
		return describeType(t.Elem())
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return t.String()
}

var std = New()

// Struct validates s with the package default Validator.
func Struct(s any) error { return std.Struct(s) }
