package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  []string
	}{
		{"ana@serranotex.com", nil},
		{"a.b+c@sub.domain.co", nil},
		{"", []string{"Email is required"}},
		{"   ", []string{"Email is required"}},
		{"ana@", []string{"Email format is invalid"}},
		{"ana@dominio", []string{"Email format is invalid"}},
		{"ana perez@x.com", []string{"Email format is invalid"}},
	}
	for _, tt := range tests {
		r := validation.ValidateEmail(tt.email)
		if tt.want == nil {
			assert.True(t, r.IsValid, tt.email)
			continue
		}
		assert.Equal(t, tt.want, r.Errors, tt.email)
	}
}

func TestValidatePassword_ClasesFaltantesSeAcumulan(t *testing.T) {
	r := validation.ValidatePassword("abc")
	assert.False(t, r.IsValid)
	assert.Equal(t, []string{
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
	}, r.Errors)
}

func TestValidatePassword_Valida(t *testing.T) {
	r := validation.ValidatePassword("Abcdefg1")
	assert.True(t, r.IsValid)
	assert.Empty(t, r.Errors)
}

func TestValidatePassword_Vacia(t *testing.T) {
	assert.Equal(t, []string{"Password is required"}, validation.ValidatePassword("").Errors)
}

func TestPasswordPolicy_SimbolosConfigurables(t *testing.T) {
	policy := validation.DefaultPasswordPolicy
	assert.True(t, policy.Validate("Abcdefg1").IsValid, "por defecto no se exigen símbolos")

	policy.RequireSymbols = true
	assert.Equal(t, []string{"Password must contain at least one special character"},
		policy.Validate("Abcdefg1").Errors)
	assert.True(t, policy.Validate("Abcdefg1!").IsValid)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, validation.ValidatePhone("").IsValid, "el teléfono es opcional")
	assert.True(t, validation.ValidatePhone("+57 (601) 555-1234").IsValid)
	assert.Equal(t, []string{"Phone number format is invalid"}, validation.ValidatePhone("555-CALL").Errors)
	assert.False(t, validation.ValidatePhone("57+555").IsValid, "el '+' solo puede ir al inicio")
}

func TestValidateSKU(t *testing.T) {
	assert.True(t, validation.ValidateSKU("TEX-001").IsValid)
	assert.Equal(t, []string{"SKU is required"}, validation.ValidateSKU("").Errors)
	assert.Equal(t, []string{
		"SKU must be at least 3 characters long",
		"SKU format is invalid",
	}, validation.ValidateSKU("a1").Errors)
	assert.Equal(t, []string{"SKU must be no more than 20 characters long"},
		validation.ValidateSKU("ABCDEFGHIJKLMNOPQRSTU").Errors)
}
