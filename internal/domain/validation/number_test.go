package validation_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

func TestNumber_UnmarshalRango(t *testing.T) {
	cases := []struct {
		name    string
		literal string
		numeric bool
	}{
		{"entero", `12`, true},
		{"decimal", `12.345`, true},
		{"exponente_chico", `1.5e3`, true},
		{"diez_digitos", `9999999999.99`, true},
		{"once_digitos", `99999999999`, false},
		{"exponente_enorme", `1e30000000`, false},
		{"exponente_negativo_enorme", `1e-30000000`, false},
		{"negativo_enorme", `-1e400`, false},
		{"literal_largo", `0.` + strings.Repeat("1", 80), false},
		{"texto", `"12"`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n validation.Number
			require.NoError(t, json.Unmarshal([]byte(tc.literal), &n))
			assert.True(t, n.IsSet())
			assert.Equal(t, tc.numeric, n.IsNumber())
		})
	}
}

func TestValidateSale_CantidadFueraDeRango(t *testing.T) {
	var in validation.SaleInput
	body := `{"items":[{"product_id":"p","quantity":1e30000000,"price":1}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	start := time.Now()
	r := validation.ValidateSale(in)
	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, r.IsValid)
	assert.Equal(t, []string{"Item 1: Quantity must be a positive number"}, r.Errors)
}

func TestNum_NoFinitoNoEsNumero(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300} {
		n := validation.Num(v)
		assert.True(t, n.IsSet())
		assert.False(t, n.IsNumber())
		assert.True(t, n.Decimal().IsZero())
	}
	assert.Equal(t, "12.5", validation.Num(12.5).Decimal().String())
}
