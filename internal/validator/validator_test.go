package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
	Role  string `json:"role" validate:"omitempty,is-user-role"`
}

// TestValidate_OK - валидная структура проходит без ошибок
func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleRequest{
		Email: "tester@test.com",
		Code:  "123456",
		Role:  "Admin",
	})
	assert.NoError(t, err)
}

// TestValidate_FieldNamesFromJSONTags - в карте ошибок имена полей
// берутся из json-тегов, не из Go-имен
func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Code: "12ab56"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "code")
	assert.NotContains(t, vErr.Errors, "Email")
}

// TestValidate_CodeLength - код сброса строго 6 цифр
func TestValidate_CodeLength(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&sampleRequest{Email: "a@b.com", Code: "12345"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors["code"], "exactly 6")
}

// TestValidate_UserRoleRule - кастомное правило is-user-role
func TestValidate_UserRoleRule(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Code: "123456", Role: "RegularUser"}))

	err := v.Validate(&sampleRequest{Email: "a@b.com", Code: "123456", Role: "SuperUser"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "role")
}
