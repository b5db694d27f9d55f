package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de compra.
// Pendiente -> Recibida | Cancelada. Una vez Recibida o Cancelada la orden
// queda cerrada: no admite edición ni borrado, y la recepción genera los
// movimientos ENTRADA exactamente una vez.
const (
	CompraPendiente = "Pendiente"
	CompraRecibida  = "Recibida"
	CompraCancelada = "Cancelada"
)

// TransicionCompraValida indica si el cambio de estado está permitido.
func TransicionCompraValida(actual, nuevo string) bool {
	return actual == CompraPendiente &&
		(nuevo == CompraRecibida || nuevo == CompraCancelada)
}

// Compra es una orden de compra a un proveedor, destinada a un almacén.
type Compra struct {
	ID          string
	Numero      string // consecutivo legible, ej. OC-000123
	ProveedorID string // EntidadComercial con tipo PROVEEDOR o AMBOS
	AlmacenID   string
	Estado      string
	Subtotal    decimal.Decimal
	Descuento   decimal.Decimal
	Total       decimal.Decimal
	Items       []CompraItem
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompraItem es una línea de la orden.
type CompraItem struct {
	ID             string
	CompraID       string
	ProductoID     string
	CodigoProducto string
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	TotalLinea     decimal.Decimal // Cantidad * PrecioUnitario
}

// CalcularTotales recalcula Subtotal y Total (Subtotal - Descuento) desde las líneas.
func (c *Compra) CalcularTotales() {
	subtotal := decimal.Zero
	for i := range c.Items {
		c.Items[i].TotalLinea = c.Items[i].PrecioUnitario.Mul(decimal.NewFromInt(c.Items[i].Cantidad))
		subtotal = subtotal.Add(c.Items[i].TotalLinea)
	}
	c.Subtotal = subtotal
	c.Total = subtotal.Sub(c.Descuento)
}
