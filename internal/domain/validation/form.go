package validation

import "context"

// Validator valida un valor arbitrario de un formulario.
type Validator func(value any) Result

// FormResult resultado de validar un formulario. Errors solo contiene los campos que fallaron.
type FormResult struct {
	IsValid bool                `json:"isValid"`
	Errors  map[string][]string `json:"errors"`
}

// ValidateForm aplica a cada campo de validators el valor correspondiente de data
// (nil si falta). El resultado no depende del orden de iteración.
func ValidateForm(data map[string]any, validators map[string]Validator) FormResult {
	out := FormResult{IsValid: true, Errors: map[string][]string{}}
	for field, validate := range validators {
		if validate == nil {
			continue
		}
		r := validate(data[field])
		if !r.IsValid {
			out.Errors[field] = r.Errors
			out.IsValid = false
		}
	}
	return out
}

// StringValidator adapta un validador de cadenas; valores que no son cadena se tratan como "".
func StringValidator(fn func(string) Result) Validator {
	return func(value any) Result {
		s, _ := asString(value)
		return fn(s)
	}
}

// RuleValidator adapta una FieldRule para usarla en ValidateForm.
func RuleValidator(rule FieldRule, fieldName string) Validator {
	return func(value any) Result {
		return ValidateField(value, rule, fieldName)
	}
}

// ExternalErrorMessage es el único mensaje que se devuelve cuando la comprobación externa falla.
const ExternalErrorMessage = "Validation error occurred"

// ValidateExternal ejecuta check (una consulta a un recurso externo, p. ej. unicidad en la base
// de datos) y convierte cualquier fallo (error devuelto o panic) en un
// Result inválido con ExternalErrorMessage. No impone timeout: ctx se pasa tal cual.
func ValidateExternal[T any](ctx context.Context, value T, check func(context.Context, T) (Result, error)) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Invalid(ExternalErrorMessage)
		}
	}()
	r, err := check(ctx, value)
	if err != nil {
		return Invalid(ExternalErrorMessage)
	}
	return newResult(r.Errors)
}
