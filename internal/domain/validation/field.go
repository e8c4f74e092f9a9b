package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldRule describe las restricciones de un valor. Un límite en cero no se aplica.
// Custom devuelve el mensaje de error, o "" si el valor es aceptable.
type FieldRule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value any) string
}

// ValidateField aplica rule a value.
//
// Orden: si el campo es obligatorio y está vacío se devuelve un único error y no se evalúa nada más;
// un campo opcional vacío es válido. Para cadenas se acumulan longitud mínima, longitud máxima
// y patrón; después se ejecuta Custom. Los errores conservan ese orden.
func ValidateField(value any, rule FieldRule, fieldName string) Result {
	if isEmpty(value) {
		if rule.Required {
			return Invalid(fieldName + " is required")
		}
		return Valid()
	}

	var c collector
	if s, ok := asString(value); ok {
		n := utf8.RuneCountInString(s)
		if rule.MinLength > 0 && n < rule.MinLength {
			c.add(fmt.Sprintf("%s must be at least %d characters long", fieldName, rule.MinLength))
		}
		if rule.MaxLength > 0 && n > rule.MaxLength {
			c.add(fmt.Sprintf("%s must be no more than %d characters long", fieldName, rule.MaxLength))
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			c.add(fieldName + " format is invalid")
		}
	}
	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			c.add(msg)
		}
	}
	return c.result()
}

// isEmpty: nil, puntero nulo o cadena que queda vacía tras recortar espacios.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case Number:
		return !v.IsSet()
	case *Number:
		return v == nil || !v.IsSet()
	}
	return false
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v != nil {
			return *v, true
		}
	}
	return "", false
}
