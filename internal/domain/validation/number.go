package validation

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Number es un valor numérico que recuerda cómo llegó: si fue enviado y si fue enviado como número.
// Un texto numérico ("12.5") queda presente pero no numérico: los validadores no hacen coerción.
// El valor cero de Number representa un campo ausente.
type Number struct {
	value   decimal.Decimal
	present bool
	numeric bool
}

// Rango representable: a lo sumo maxIntegerDigits dígitos enteros (cabe en la columna NUMERIC
// más estrecha, (14,4)) y maxScale decimales. Fuera de él el valor queda presente y no numérico.
const (
	maxIntegerDigits = 10
	maxScale         = 20
	maxLiteralLen    = 64
)

// Num construye un Number presente a partir de un float64. NaN, ±Inf y valores fuera de
// rango quedan presentes y no numéricos.
func Num(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotANumber()
	}
	d := decimal.NewFromFloat(v)
	if !inRange(d) {
		return NotANumber()
	}
	return Number{value: d, present: true, numeric: true}
}

// inRange mira solo exponente y cantidad de dígitos; no escala el valor.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxScale || exp > maxIntegerDigits {
		return false
	}
	return d.IsZero() || int64(d.NumDigits())+exp <= maxIntegerDigits
}

// NumFromDecimal construye un Number presente a partir de un decimal.
func NumFromDecimal(d decimal.Decimal) Number {
	return Number{value: d, present: true, numeric: true}
}

// NotANumber representa un campo enviado con un valor que no es numérico (por ejemplo texto).
func NotANumber() Number {
	return Number{present: true}
}

// IsSet indica si el campo fue enviado.
func (n Number) IsSet() bool { return n.present }

// IsNumber indica si el campo fue enviado como número.
func (n Number) IsNumber() bool { return n.present && n.numeric }

// Decimal devuelve el valor; cero si no es numérico.
func (n Number) Decimal() decimal.Decimal {
	if !n.IsNumber() {
		return decimal.Zero
	}
	return n.value
}

// UnmarshalJSON acepta únicamente literales numéricos JSON dentro del rango representable.
// null equivale a ausente; cualquier otro literal queda presente y no numérico.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	*n = Number{present: true}
	if len(data) == 0 || len(data) > maxLiteralLen || !(data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return nil
	}
	d, err := decimal.NewFromString(num.String())
	if err != nil || !inRange(d) {
		return nil
	}
	n.value = d
	n.numeric = true
	return nil
}

// MarshalJSON escribe el número, o null si está ausente o no es numérico.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsNumber() {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

func isNonNegative(n Number) bool {
	return n.IsNumber() && !n.value.IsNegative()
}

func isPositive(n Number) bool {
	return n.IsNumber() && n.value.IsPositive()
}

var hundred = decimal.NewFromInt(100)

func isPercent(n Number) bool {
	return isNonNegative(n) && n.value.LessThanOrEqual(hundred)
}
