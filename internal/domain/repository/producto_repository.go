package repository

import (
	"github.com/shopspring/decimal"

	"github.com/andinosoft/erp-pyme/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Stock y Costo solo se actualizan desde el motor de inventario, nunca por CRUD.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetByCodigo busca por código entre productos activos.
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	UpdateStock(productoID string, stock int64) error
	UpdateCosto(productoID string, costo decimal.Decimal) error
	// List devuelve una página de productos y el total sin paginar.
	List(limit, offset int, soloActivos bool) ([]*entity.Producto, int, error)
	// Delete desactiva el producto (borrado lógico).
	Delete(id string) error
}
