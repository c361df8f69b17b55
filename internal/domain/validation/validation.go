package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainerrors "github.com/tanafos/bid-rules-core/internal/domain/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide struct validator. decimal.Decimal fields
// are exposed to tags as float64 so the stock gte/lte tags apply to them.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Struct validates s and converts any failure into an InvalidInput AppError
// carrying a field -> messages map under Details["fields"].
func Struct(code string, s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.NewInternalError("struct validation failed").WithCause(err)
	}

	fields := FieldMessages(validationErrors)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return domainerrors.NewValidationError(code, fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))).
		WithDetails(map[string]interface{}{"fields": fields})
}

// FieldMessages converts validator errors to human-readable messages keyed by field
func FieldMessages(validationErrors validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string)

	for _, fe := range validationErrors {
		param := fe.Param()

		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required"
		case "gte", "min":
			msg = fmt.Sprintf("Minimum value is %s", param)
		case "lte", "max":
			msg = fmt.Sprintf("Maximum value is %s", param)
		case "gtefield":
			msg = fmt.Sprintf("Must be greater than or equal to %s", param)
		case "oneof":
			msg = fmt.Sprintf("Must be one of: %s", param)
		case "dive":
			msg = "Contains an invalid element"
		default:
			msg = fmt.Sprintf("Failed %s validation", fe.Tag())
		}

		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}

	return fields
}
