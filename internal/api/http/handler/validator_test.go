package handler

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name,omitempty"`
}

func TestStructValidator(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.Validate(&signup{Email: "a@x.com"}))

	err := v.Validate(&signup{Name: "no email"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "error = %v", err)
	assert.Equal(t, "email", verrs[0].Field())

	payload := map[string]any{"anything": 1}
	assert.NoError(t, v.Validate(&payload))

	var nilSignup *signup
	assert.NoError(t, v.Validate(nilSignup))
}

func TestValidateMap(t *testing.T) {
	v := NewStructValidator()
	rules := map[string]any{"email": "required"}

	assert.NoError(t, v.ValidateMap(map[string]any{"email": "a@x.com", "price": "$200"}, rules))

	for name, body := range map[string]map[string]any{
		"missing": {"name": "x"},
		"empty":   {"email": ""},
		"null":    {"email": nil},
	} {
		t.Run(name, func(t *testing.T) {
			err := v.ValidateMap(body, rules)
			require.ErrorIs(t, err, ErrInvalidBody)
			assert.Contains(t, err.Error(), "email failed on required")
			assert.Equal(t, 400, StatusFor(err))
		})
	}
}
