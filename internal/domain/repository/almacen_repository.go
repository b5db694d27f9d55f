package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia para Almacen.
type AlmacenRepository interface {
	Create(almacen *entity.Almacen) error
	GetByID(id string) (*entity.Almacen, error)
	GetByCodigo(codigo string) (*entity.Almacen, error)
	Update(almacen *entity.Almacen) error
	// List devuelve una página de almacenes y el total sin paginar.
	List(limit, offset int) ([]*entity.Almacen, int, error)
}
