package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
	MovimientoAjuste  = "AJUSTE"
)

// TipoMovimientoValido indica si el tipo pertenece al catálogo.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste:
		return true
	}
	return false
}

// MovimientoInventario es una fila del kardex: libro mayor append-only de
// cambios de stock. Una vez creada nunca se actualiza ni se borra; las
// correcciones son nuevos movimientos compensatorios.
// Invariante: StockNuevo - StockAnterior == Cantidad, y StockAlmacen.Cantidad
// es la suma corriente de las Cantidades de su par (producto, almacén).
type MovimientoInventario struct {
	ID            string
	ProductoID    string
	AlmacenID     string
	Tipo          string // ENTRADA, SALIDA, AJUSTE
	Cantidad      int64  // delta con signo: positivo entrada, negativo salida
	StockAnterior int64
	StockNuevo    int64
	MotivoID      string // referencia al catálogo de motivos (opcional)
	Motivo        string // texto libre cuando no hay motivo de catálogo
	DocumentoRef  string // número de compra, nota de ajuste, etc.
	Observaciones string
	UsuarioID     string
	Fecha         time.Time
	CreatedAt     time.Time
}
