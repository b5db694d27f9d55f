package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// List devuelve una página de usuarios y el total sin paginar.
	List(limit, offset int) ([]*entity.Usuario, int, error)
}
