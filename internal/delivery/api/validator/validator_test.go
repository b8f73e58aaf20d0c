package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusRequest struct {
	Status string         `json:"status" validate:"required,max=32"`
	Fields map[string]any `json:"fields,omitempty"`
	Amount *float64       `json:"amountCollected" validate:"omitempty,gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	negative := -1.0

	require.NoError(t, v.Validate(&statusRequest{Status: "delivered"}))

	err := v.Validate(&statusRequest{Amount: &negative})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"status":          "required",
		"amountCollected": "gte=0",
	}, FieldErrors(err))
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}
