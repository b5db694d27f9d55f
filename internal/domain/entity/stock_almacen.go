package entity

import "time"

// Estados derivados del stock frente al mínimo configurado.
const (
	EstadoStockNormal  = "NORMAL"
	EstadoStockBajo    = "BAJO"    // cantidad < mínimo
	EstadoStockCritico = "CRITICO" // cantidad <= 50% del mínimo
)

// StockAlmacen es la fuente de verdad de "cuánto hay del producto P en el almacén A".
// Clave compuesta (ProductoID, AlmacenID). Cantidad nunca puede quedar negativa.
// La fila se crea perezosamente con el primer movimiento.
type StockAlmacen struct {
	ProductoID  string
	AlmacenID   string
	Cantidad    int64
	StockMinimo *int64 // override opcional; si es nil aplica el mínimo del producto
	UpdatedAt   time.Time
}

// MinimoEfectivo devuelve el mínimo aplicable: el override del almacén si existe,
// si no el mínimo del producto.
func (s *StockAlmacen) MinimoEfectivo(minimoProducto int64) int64 {
	if s.StockMinimo != nil {
		return *s.StockMinimo
	}
	return minimoProducto
}

// EstadoStock clasifica una cantidad frente a su mínimo.
// Con mínimo 0 el estado es siempre NORMAL.
func EstadoStock(cantidad, minimo int64) string {
	if minimo <= 0 {
		return EstadoStockNormal
	}
	if cantidad*2 <= minimo {
		return EstadoStockCritico
	}
	if cantidad < minimo {
		return EstadoStockBajo
	}
	return EstadoStockNormal
}
