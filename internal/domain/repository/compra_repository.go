package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// CompraRepository define el puerto de persistencia para órdenes de compra.
type CompraRepository interface {
	// Create persiste la compra con sus líneas.
	Create(compra *entity.Compra) error
	// GetByID devuelve la compra con sus líneas cargadas.
	GetByID(id string) (*entity.Compra, error)
	// GetByIDForUpdate bloquea la fila de la compra (SELECT FOR UPDATE) para
	// el cambio de estado; las líneas vienen cargadas.
	GetByIDForUpdate(id string) (*entity.Compra, error)
	// Update reemplaza cabecera y líneas. Solo válido mientras está Pendiente.
	Update(compra *entity.Compra) error
	UpdateEstado(id, estado string) error
	Delete(id string) error
	// List filtra por estado (vacío = todos) y devuelve el total sin paginar.
	List(estado string, limit, offset int) ([]*entity.Compra, int, error)
	// NextNumero devuelve el siguiente consecutivo legible (OC-000123).
	NextNumero() (string, error)
}
