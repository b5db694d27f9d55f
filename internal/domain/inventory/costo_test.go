package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/andinosoft/erp-pyme/internal/domain/inventory"
)

func TestCostoPromedio(t *testing.T) {
	// 10 unidades a 5.00 más 10 unidades a 7.00 → promedio 6.00.
	got := inventory.CostoPromedio(10, decimal.NewFromInt(5), 10, decimal.NewFromInt(7))
	assert.True(t, got.Equal(decimal.NewFromInt(6)), "got %s", got)

	// Entrada mayor que el stock pondera hacia el costo nuevo.
	got = inventory.CostoPromedio(2, decimal.NewFromInt(10), 8, decimal.NewFromInt(20))
	assert.True(t, got.Equal(decimal.NewFromInt(18)), "got %s", got)
}

func TestCostoPromedio_SinStockPrevio(t *testing.T) {
	// Primera recepción: el costo es el de la entrada.
	got := inventory.CostoPromedio(0, decimal.Zero, 5, decimal.NewFromFloat(12.34))
	assert.True(t, got.Equal(decimal.NewFromFloat(12.34)), "got %s", got)
}

func TestCostoPromedio_SumaNoPositiva(t *testing.T) {
	assert.True(t, inventory.CostoPromedio(0, decimal.NewFromInt(9), 0, decimal.NewFromInt(9)).IsZero())
	assert.True(t, inventory.CostoPromedio(5, decimal.NewFromInt(9), -5, decimal.NewFromInt(9)).IsZero())
}
