package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/andinosoft/erp-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// EstadoStock — clasificación frente al mínimo
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoStock_Fronteras(t *testing.T) {
	casos := []struct {
		nombre   string
		cantidad int64
		minimo   int64
		want     string
	}{
		{"sin mínimo configurado siempre normal", 0, 0, entity.EstadoStockNormal},
		{"minimo negativo se trata como sin mínimo", 3, -1, entity.EstadoStockNormal},
		{"cantidad igual al mínimo es normal", 10, 10, entity.EstadoStockNormal},
		{"cantidad sobre el mínimo es normal", 11, 10, entity.EstadoStockNormal},
		{"justo bajo el mínimo es bajo", 9, 10, entity.EstadoStockBajo},
		{"mitad exacta del mínimo es crítico", 5, 10, entity.EstadoStockCritico},
		{"bajo la mitad es crítico", 4, 10, entity.EstadoStockCritico},
		{"stock cero con mínimo es crítico", 0, 1, entity.EstadoStockCritico},
		{"mitad redondeada con mínimo impar", 3, 7, entity.EstadoStockCritico},
		{"sobre la mitad con mínimo impar es bajo", 4, 7, entity.EstadoStockBajo},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.EstadoStock(tc.cantidad, tc.minimo))
		})
	}
}

func TestStockAlmacen_MinimoEfectivo(t *testing.T) {
	override := int64(20)
	conOverride := &entity.StockAlmacen{StockMinimo: &override}
	sinOverride := &entity.StockAlmacen{}

	assert.Equal(t, int64(20), conOverride.MinimoEfectivo(5), "el override del almacén manda")
	assert.Equal(t, int64(5), sinOverride.MinimoEfectivo(5), "sin override aplica el mínimo del producto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Compra — totales y transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestCompra_CalcularTotales(t *testing.T) {
	c := &entity.Compra{
		Descuento: decimal.NewFromInt(5),
		Items: []entity.CompraItem{
			{Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(10.50)},
			{Cantidad: 3, PrecioUnitario: decimal.NewFromInt(4)},
		},
	}
	c.CalcularTotales()

	assert.True(t, c.Items[0].TotalLinea.Equal(decimal.NewFromFloat(21.00)))
	assert.True(t, c.Items[1].TotalLinea.Equal(decimal.NewFromInt(12)))
	assert.True(t, c.Subtotal.Equal(decimal.NewFromInt(33)), "subtotal = suma de líneas")
	assert.True(t, c.Total.Equal(decimal.NewFromInt(28)), "total = subtotal - descuento")
}

func TestTransicionCompraValida(t *testing.T) {
	assert.True(t, entity.TransicionCompraValida(entity.CompraPendiente, entity.CompraRecibida))
	assert.True(t, entity.TransicionCompraValida(entity.CompraPendiente, entity.CompraCancelada))

	// Recibida y Cancelada son estados terminales.
	assert.False(t, entity.TransicionCompraValida(entity.CompraRecibida, entity.CompraCancelada))
	assert.False(t, entity.TransicionCompraValida(entity.CompraCancelada, entity.CompraRecibida))
	assert.False(t, entity.TransicionCompraValida(entity.CompraRecibida, entity.CompraPendiente))
	assert.False(t, entity.TransicionCompraValida(entity.CompraPendiente, entity.CompraPendiente))
	assert.False(t, entity.TransicionCompraValida(entity.CompraPendiente, "Archivada"))
}

// ──────────────────────────────────────────────────────────────────────────────
// EntidadComercial — validación de documentos y rol de proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarDocumento(t *testing.T) {
	casos := []struct {
		nombre string
		tipo   string
		numero string
		want   bool
	}{
		{"DNI de 8 dígitos", entity.DocumentoDNI, "12345678", true},
		{"DNI corto", entity.DocumentoDNI, "1234567", false},
		{"DNI largo", entity.DocumentoDNI, "123456789", false},
		{"DNI con letras", entity.DocumentoDNI, "1234567a", false},
		{"RUC de 11 dígitos", entity.DocumentoRUC, "20123456789", true},
		{"RUC de 8 dígitos", entity.DocumentoRUC, "12345678", false},
		{"CE de 9 dígitos", entity.DocumentoCE, "123456789", true},
		{"CE de 12 dígitos", entity.DocumentoCE, "123456789012", true},
		{"CE de 13 dígitos", entity.DocumentoCE, "1234567890123", false},
		{"CE de 8 dígitos", entity.DocumentoCE, "12345678", false},
		{"número vacío", entity.DocumentoDNI, "", false},
		{"tipo desconocido", "PASAPORTE", "12345678", false},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ValidarDocumento(tc.tipo, tc.numero))
		})
	}
}

func TestEntidadComercial_EsProveedor(t *testing.T) {
	assert.True(t, (&entity.EntidadComercial{TipoEntidad: entity.EntidadProveedor}).EsProveedor())
	assert.True(t, (&entity.EntidadComercial{TipoEntidad: entity.EntidadAmbos}).EsProveedor())
	assert.False(t, (&entity.EntidadComercial{TipoEntidad: entity.EntidadCliente}).EsProveedor())
}
