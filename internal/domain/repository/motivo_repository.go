package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// MotivoRepository define el puerto del catálogo de motivos de movimiento.
type MotivoRepository interface {
	Create(motivo *entity.MotivoMovimiento) error
	GetByID(id string) (*entity.MotivoMovimiento, error)
	GetByCodigo(codigo string) (*entity.MotivoMovimiento, error)
	// ListByTipo lista motivos activos; tipo vacío devuelve todos.
	ListByTipo(tipo string) ([]*entity.MotivoMovimiento, error)
}
