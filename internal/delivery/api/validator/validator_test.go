package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutForm struct {
	Plan  string `validate:"required,plan"`
	Email string `validate:"required,email"`
}

type statusForm struct {
	Status string `validate:"required,withdrawal_status"`
}

func TestValidate_CatalogTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&checkoutForm{Plan: "starter", Email: "a@b.in"}))

	err := v.Validate(&checkoutForm{Plan: "gold", Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"plan": "plan", "email": "email"}, FieldErrors(err))

	assert.NoError(t, v.Validate(&statusForm{Status: "processing"}))
	assert.Error(t, v.Validate(&statusForm{Status: "lost"}))
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
