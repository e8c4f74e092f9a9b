package validation

import (
	"fmt"
	"regexp"
)

// Patrones compartidos. Son intencionalmente simples: no es validación RFC de email.
var (
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	SKUPattern   = regexp.MustCompile(`^[A-Z0-9\-]+$`)

	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
	symbolPattern    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Límites de SKU.
const (
	SKUMinLength = 3
	SKUMaxLength = 20
)

// ValidateEmail: obligatorio y con forma local@dominio.tld.
func ValidateEmail(email string) Result {
	return ValidateField(email, FieldRule{Required: true, Pattern: EmailPattern}, "Email")
}

// ValidatePhone: opcional; si viene, dígitos, espacios, guiones, paréntesis y '+' inicial.
func ValidatePhone(phone string) Result {
	return ValidateField(phone, FieldRule{Pattern: PhonePattern}, "Phone number")
}

// ValidateSKU: obligatorio, 3 a 20 caracteres, mayúsculas, dígitos y guiones.
func ValidateSKU(sku string) Result {
	return ValidateField(sku, FieldRule{
		Required:  true,
		MinLength: SKUMinLength,
		MaxLength: SKUMaxLength,
		Pattern:   SKUPattern,
	}, "SKU")
}

// PasswordPolicy define los requisitos de contraseña. Cada clase faltante es un error propio.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSymbols   bool
}

// DefaultPasswordPolicy: 8 caracteres, mayúscula, minúscula y dígito; símbolos no exigidos.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:        8,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSymbols:   false,
}

// ValidatePassword valida con DefaultPasswordPolicy.
func ValidatePassword(password string) Result {
	return DefaultPasswordPolicy.Validate(password)
}

// Validate aplica la política. Una contraseña vacía produce solo "Password is required".
func (p PasswordPolicy) Validate(password string) Result {
	if password == "" {
		return Invalid("Password is required")
	}
	var c collector
	if len([]rune(password)) < p.MinLength {
		c.add(fmt.Sprintf("Password must be at least %d characters long", p.MinLength))
	}
	if p.RequireUppercase && !uppercasePattern.MatchString(password) {
		c.add("Password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !lowercasePattern.MatchString(password) {
		c.add("Password must contain at least one lowercase letter")
	}
	if p.RequireNumbers && !digitPattern.MatchString(password) {
		c.add("Password must contain at least one number")
	}
	if p.RequireSymbols && !symbolPattern.MatchString(password) {
		c.add("Password must contain at least one special character")
	}
	return c.result()
}
