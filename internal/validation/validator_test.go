package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"Username" validate:"required,min=5,alphanum"`
	Password string `json:"Password" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
	Birthday string `json:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(signup{Username: "alice1", Password: "secret1", Email: "a@x.com", Birthday: "1990-02-01"})
	assert.NoError(t, err)
}

func TestStruct_FieldErrors(t *testing.T) {
	err := Struct(signup{Username: "al!", Email: "nope", Birthday: "01/02/1990"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	var verr *Errors
	require.True(t, errors.As(err, &verr))

	byField := map[string]FieldError{}
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}
	assert.Equal(t, "min", byField["Username"].Tag)
	assert.Equal(t, "required", byField["Password"].Tag)
	assert.Equal(t, "email", byField["Email"].Tag)
	assert.Equal(t, "datetime", byField["Birthday"].Tag)
	assert.Contains(t, err.Error(), "Username must be at least 5 characters long")
}

func TestStruct_Alphanumeric(t *testing.T) {
	err := Struct(signup{Username: "alice_1", Password: "p", Email: "a@x.com"})
	var verr *Errors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "alphanum", verr.Fields[0].Tag)
}
