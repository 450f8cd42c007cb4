// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registration struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	err := ValidateStruct(&registration{
		Username: "dapur_rasa",
		Email:    "owner@dapurrasa.id",
		Password: "Rahasia123!",
	})
	assert.NoError(t, err)
}

func TestStrongPasswordRules(t *testing.T) {
	weak := []string{
		"Sh0rt!",
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoNumbers!!",
		"NoSpecial123",
	}

	for _, password := range weak {
		err := ValidateStruct(&registration{
			Username: "dapur_rasa",
			Email:    "owner@dapurrasa.id",
			Password: password,
		})
		assert.Error(t, err, "password %q should be rejected", password)
	}
}

func TestUsernameRules(t *testing.T) {
	bad := []string{"ab", "has space", "has-dash", "emoji�err"}
	for _, username := range bad {
		err := ValidateStruct(&registration{
			Username: username,
			Email:    "owner@dapurrasa.id",
			Password: "Rahasia123!",
		})
		assert.Error(t, err, "username %q should be rejected", username)
	}
}

func TestGetValidationErrorsProducesFieldMessages(t *testing.T) {
	err := ValidateStruct(&registration{})
	require.Error(t, err)

	validationErrors := GetValidationErrors(err)
	require.Len(t, validationErrors, 3)

	fields := make(map[string]string)
	for _, e := range validationErrors {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "required", fields["username"])
	assert.Equal(t, "required", fields["email"])
	assert.Equal(t, "required", fields["password"])
}
