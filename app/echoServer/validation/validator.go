package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

// NewValidate returns the validator shared by echo and the controllers.
// It adds "notblank", which rejects strings made only of whitespace, and
// reports fields by their json names.
func NewValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func New(v *validator.Validate) *Validator {
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Fields maps each failing field to its rule, e.g. {"price": "lte 100000"}.
// Errors that are not validation errors come back under "error".
func Fields(err error) map[string]string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[string]string{"error": err.Error()}
	}
	out := make(map[string]string, len(ves))
	for _, fe := range ves {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += " " + fe.Param()
		}
		out[fe.Field()] = rule
	}
	return out
}
