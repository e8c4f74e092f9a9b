package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/serranotex/serrano-tex-ims/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageCost(t *testing.T) {
	got := inventory.WeightedAverageCost(d("10"), d("5"), d("10"), d("7"))
	assert.True(t, got.Equal(d("6")), got.String())
}

func TestWeightedAverageCost_SinStockPrevio(t *testing.T) {
	got := inventory.WeightedAverageCost(decimal.Zero, decimal.Zero, d("3"), d("4.5"))
	assert.True(t, got.Equal(d("4.5")), got.String())
}

func TestWeightedAverageCost_StockNoPositivo(t *testing.T) {
	assert.True(t, inventory.WeightedAverageCost(d("-2"), d("5"), d("1"), d("7")).IsZero())
}
