package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto o SKU del catálogo (multi-almacén).
// Stock es un agregado derivado: siempre igual a la suma de StockAlmacen.Cantidad
// en todos los almacenes; la fuente de verdad es la tabla stock_almacen.
// Costo es promedio ponderado calculado desde las recepciones de compra.
type Producto struct {
	ID           string
	Codigo       string // único entre productos activos
	Nombre       string
	Descripcion  string
	Categoria    string
	PrecioVenta  decimal.Decimal
	Costo        decimal.Decimal // costo promedio ponderado (inicia en 0)
	Stock        int64           // agregado, nunca se modifica directo
	StockMinimo  int64
	UnidadMedida string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
