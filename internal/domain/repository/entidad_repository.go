package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// EntidadRepository define el puerto de persistencia para EntidadComercial.
type EntidadRepository interface {
	Create(entidad *entity.EntidadComercial) error
	GetByID(id string) (*entity.EntidadComercial, error)
	// GetByDocumento busca entre entidades activas (la unicidad aplica solo a activas).
	GetByDocumento(tipoDocumento, numeroDocumento string) (*entity.EntidadComercial, error)
	Update(entidad *entity.EntidadComercial) error
	// List filtra por tipo de entidad (vacío = todas) entre activas y
	// devuelve el total sin paginar.
	List(tipoEntidad string, limit, offset int) ([]*entity.EntidadComercial, int, error)
	// Delete desactiva la entidad (borrado lógico).
	Delete(id string) error
}
