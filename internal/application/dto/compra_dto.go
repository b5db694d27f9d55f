package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraItemRequest una línea de la orden de compra.
type CompraItemRequest struct {
	CodigoProducto string          `json:"codigoProducto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateCompraRequest entrada para crear una orden de compra (estado Pendiente).
type CreateCompraRequest struct {
	ProveedorID string              `json:"proveedorId"`
	AlmacenID   string              `json:"almacenId"`
	Descuento   decimal.Decimal     `json:"descuento"`
	Items       []CompraItemRequest `json:"items"`
}

// UpdateCompraRequest entrada para actualizar una compra Pendiente.
// Reemplaza líneas y descuento; los totales se recalculan.
type UpdateCompraRequest struct {
	AlmacenID *string             `json:"almacenId"`
	Descuento *decimal.Decimal    `json:"descuento"`
	Items     []CompraItemRequest `json:"items"`
}

// CambioEstadoCompraRequest body para PATCH /api/compras/:id/estado.
type CambioEstadoCompraRequest struct {
	Estado string `json:"estado"` // Recibida | Cancelada
}

// CompraItemResponse una línea en la respuesta.
type CompraItemResponse struct {
	ProductoID     string          `json:"productId"`
	CodigoProducto string          `json:"codigoProducto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	TotalLinea     decimal.Decimal `json:"totalLinea"`
}

// CompraResponse salida de una orden de compra.
type CompraResponse struct {
	ID          string               `json:"id"`
	Numero      string               `json:"numero"`
	ProveedorID string               `json:"proveedorId"`
	AlmacenID   string               `json:"almacenId"`
	Estado      string               `json:"estado"`
	Subtotal    decimal.Decimal      `json:"subtotal"`
	Descuento   decimal.Decimal      `json:"descuento"`
	Total       decimal.Decimal      `json:"total"`
	Items       []CompraItemResponse `json:"items"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// CompraListResponse lista paginada de compras.
type CompraListResponse struct {
	Items []CompraResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
