package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// AlmacenUseCase casos de uso CRUD para almacenes.
type AlmacenUseCase struct {
	repo repository.AlmacenRepository
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(repo repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{repo: repo}
}

// Crear crea un almacén con código único.
func (uc *AlmacenUseCase) Crear(in dto.CreateAlmacenRequest) (*dto.AlmacenResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	almacen := &entity.Almacen{
		ID:        uuid.New().String(),
		Codigo:    in.Codigo,
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(almacen); err != nil {
		return nil, err
	}
	return toAlmacenResponse(almacen), nil
}

// GetByID obtiene un almacén por ID.
func (uc *AlmacenUseCase) GetByID(id string) (*dto.AlmacenResponse, error) {
	almacen, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, domain.ErrNotFound
	}
	return toAlmacenResponse(almacen), nil
}

// Actualizar actualiza nombre, dirección o el flag activo.
func (uc *AlmacenUseCase) Actualizar(id string, in dto.UpdateAlmacenRequest) (*dto.AlmacenResponse, error) {
	almacen, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		almacen.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		almacen.Direccion = *in.Direccion
	}
	if in.Activo != nil {
		almacen.Activo = *in.Activo
	}
	almacen.UpdatedAt = time.Now()
	if err := uc.repo.Update(almacen); err != nil {
		return nil, err
	}
	return toAlmacenResponse(almacen), nil
}

// List lista almacenes.
func (uc *AlmacenUseCase) List(page dto.PageRequest) (*dto.AlmacenListResponse, error) {
	page.Normalizar()
	list, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlmacenResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlmacenResponse(a))
	}
	return &dto.AlmacenListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

func toAlmacenResponse(a *entity.Almacen) *dto.AlmacenResponse {
	return &dto.AlmacenResponse{
		ID:        a.ID,
		Codigo:    a.Codigo,
		Nombre:    a.Nombre,
		Direccion: a.Direccion,
		Activo:    a.Activo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
