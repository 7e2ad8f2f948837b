package stakecube

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"

	"stakecube/pkg/core"
)

// Argument structs name each field after its wire parameter in the "param"
// tag so validation messages match what the API calls it.

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("param"); name != "" {
			return name
		}
		return fld.Name
	})

	// Decimals are checked by value; non-finite values map to nil and fail.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(apd.Decimal)
		if !ok || d.Form != apd.Finite {
			return nil
		}
		f, err := d.Float64()
		if err != nil {
			return nil
		}
		return f
	}, apd.Decimal{})

	return v
}

// validateArgs runs the declarative checks on args and reports the first
// failing field as a validation error.
func validateArgs(args any) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return core.NewValidationError(exchangeName, fe.Field(), describe(fe)).Wrap(err)
	}
	return core.NewExchangeError(exchangeName, core.ErrorTypeValidation, 0, err.Error()).
		WithCode(core.ErrCodeInvalidParameter).
		Wrap(err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// formatDecimal renders d in plain notation, never with an exponent.
func formatDecimal(d *apd.Decimal) string {
	return d.Text('f')
}
