package dto

import "time"

// AjusteRequest body para POST /api/inventory/ajustes.
// CantidadAjuste es un entero con signo distinto de cero. Se indica MotivoID
// (catálogo) o MotivoAjuste (texto libre), al menos uno.
type AjusteRequest struct {
	ProductoID     string `json:"productId"`
	AlmacenID      string `json:"warehouseId"`
	CantidadAjuste int64  `json:"cantidadAjuste"`
	MotivoID       string `json:"reasonId,omitempty"`
	MotivoAjuste   string `json:"adjustmentReason,omitempty"`
	Observaciones  string `json:"observaciones,omitempty"`
}

// MovimientoResponse una fila del kardex.
type MovimientoResponse struct {
	ID            string    `json:"id"`
	ProductoID    string    `json:"productId"`
	AlmacenID     string    `json:"warehouseId"`
	Tipo          string    `json:"tipo"`
	Cantidad      int64     `json:"cantidad"`
	StockAnterior int64     `json:"stockAnterior"`
	StockNuevo    int64     `json:"stockNuevo"`
	Motivo        string    `json:"motivo,omitempty"`
	DocumentoRef  string    `json:"documentoRef,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	UsuarioID     string    `json:"usuarioId,omitempty"`
	Fecha         time.Time `json:"fecha"`
}

// KardexRequest query params para GET /api/inventory/kardex.
type KardexRequest struct {
	ProductoID     string `query:"productId"`
	AlmacenID      string `query:"warehouseId"`
	TipoMovimiento string `query:"tipoMovimiento"`
	FechaDesde     string `query:"fechaDesde"` // YYYY-MM-DD
	FechaHasta     string `query:"fechaHasta"` // YYYY-MM-DD
	Page           int    `query:"page"`
	PageSize       int    `query:"pageSize"`
}

// KardexResponse página del kardex.
type KardexResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// StockRequest query params para GET /api/inventory/stock.
type StockRequest struct {
	AlmacenID  string `query:"almacenId"`
	ProductoID string `query:"productId"`
	Estado     string `query:"estado"`
	SortBy     string `query:"sortBy"`
	Order      string `query:"order"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

// StockFilaResponse una fila del listado de stock con estado derivado.
type StockFilaResponse struct {
	ProductoID     string `json:"productId"`
	CodigoProducto string `json:"codigoProducto"`
	NombreProducto string `json:"nombreProducto"`
	AlmacenID      string `json:"warehouseId"`
	NombreAlmacen  string `json:"nombreAlmacen"`
	Cantidad       int64  `json:"cantidad"`
	StockMinimo    int64  `json:"stockMinimo"`
	Estado         string `json:"estado"` // NORMAL, BAJO, CRITICO
}

// StockListResponse página del listado de stock.
type StockListResponse struct {
	Items []StockFilaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// MotivoResponse entrada del catálogo de motivos.
type MotivoResponse struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
}
