package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Categoria    string          `json:"categoria"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	StockMinimo  int64           `json:"stockMinimo"`
	UnidadMedida string          `json:"unidadMedida"`
}

// UpdateProductoRequest entrada para actualizar un producto
// (sin Costo ni Stock: se manejan vía movimientos).
type UpdateProductoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	Categoria    *string          `json:"categoria"`
	PrecioVenta  *decimal.Decimal `json:"precioVenta"`
	StockMinimo  *int64           `json:"stockMinimo"`
	UnidadMedida *string          `json:"unidadMedida"`
	Activo       *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           string          `json:"id"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Categoria    string          `json:"categoria,omitempty"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	Costo        decimal.Decimal `json:"costo"`
	Stock        int64           `json:"stock"`
	StockMinimo  int64           `json:"stockMinimo"`
	UnidadMedida string          `json:"unidadMedida"`
	Activo       bool            `json:"activo"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
