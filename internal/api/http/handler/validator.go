package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator plugs go-playground/validator into fiber's binder.
type StructValidator struct {
	v *validator.Validate
}

func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &StructValidator{v: v}
}

// Validate checks struct targets. Free-form bodies such as the token
// payload map are left alone.
func (s *StructValidator) Validate(out any) error {
	rv := reflect.ValueOf(out)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return s.v.Struct(out)
}

// ValidateMap checks a free-form body against per-key rules such as
// {"email": "required"}. Keys without a rule are not inspected.
func (s *StructValidator) ValidateMap(body map[string]any, rules map[string]any) error {
	failed := s.v.ValidateMap(body, rules)
	if len(failed) == 0 {
		return nil
	}

	keys := make([]string, 0, len(failed))
	for k := range failed {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		tag := "invalid"
		var verrs validator.ValidationErrors
		if err, ok := failed[k].(error); ok && errors.As(err, &verrs) && len(verrs) > 0 {
			tag = verrs[0].Tag()
		}
		parts = append(parts, fmt.Sprintf("%s failed on %s", k, tag))
	}
	return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(parts, "; "))
}
