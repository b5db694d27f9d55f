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

// EntidadUseCase casos de uso CRUD para entidades comerciales
// (clientes, proveedores o ambos).
type EntidadUseCase struct {
	repo repository.EntidadRepository
}

// NewEntidadUseCase construye el caso de uso.
func NewEntidadUseCase(repo repository.EntidadRepository) *EntidadUseCase {
	return &EntidadUseCase{repo: repo}
}

// Crear valida tipo y documento de forma síncrona (antes de tocar la BD) y
// verifica unicidad del documento entre entidades activas.
func (uc *EntidadUseCase) Crear(in dto.CreateEntidadRequest) (*dto.EntidadResponse, error) {
	if !entity.TipoEntidadValido(in.TipoEntidad) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidarDocumento(in.TipoDocumento, in.NumeroDocumento) {
		return nil, domain.ErrInvalidInput
	}
	if in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByDocumento(in.TipoDocumento, in.NumeroDocumento)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	entidad := &entity.EntidadComercial{
		ID:              uuid.New().String(),
		TipoEntidad:     in.TipoEntidad,
		TipoDocumento:   in.TipoDocumento,
		NumeroDocumento: in.NumeroDocumento,
		RazonSocial:     in.RazonSocial,
		NombreComercial: in.NombreComercial,
		Email:           in.Email,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(entidad); err != nil {
		return nil, err
	}
	return toEntidadResponse(entidad), nil
}

// GetByID obtiene una entidad por ID.
func (uc *EntidadUseCase) GetByID(id string) (*dto.EntidadResponse, error) {
	entidad, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entidad == nil {
		return nil, domain.ErrNotFound
	}
	return toEntidadResponse(entidad), nil
}

// Actualizar actualiza los datos editables; el documento no se cambia.
func (uc *EntidadUseCase) Actualizar(id string, in dto.UpdateEntidadRequest) (*dto.EntidadResponse, error) {
	entidad, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entidad == nil {
		return nil, domain.ErrNotFound
	}
	if in.TipoEntidad != nil {
		if !entity.TipoEntidadValido(*in.TipoEntidad) {
			return nil, domain.ErrInvalidInput
		}
		entidad.TipoEntidad = *in.TipoEntidad
	}
	if in.RazonSocial != nil {
		if *in.RazonSocial == "" {
			return nil, domain.ErrInvalidInput
		}
		entidad.RazonSocial = *in.RazonSocial
	}
	if in.NombreComercial != nil {
		entidad.NombreComercial = *in.NombreComercial
	}
	if in.Email != nil {
		entidad.Email = *in.Email
	}
	if in.Telefono != nil {
		entidad.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		entidad.Direccion = *in.Direccion
	}
	entidad.UpdatedAt = time.Now()
	if err := uc.repo.Update(entidad); err != nil {
		return nil, err
	}
	return toEntidadResponse(entidad), nil
}

// List lista entidades activas, opcionalmente por tipo.
func (uc *EntidadUseCase) List(tipoEntidad string, page dto.PageRequest) (*dto.EntidadListResponse, error) {
	if tipoEntidad != "" && !entity.TipoEntidadValido(tipoEntidad) {
		return nil, domain.ErrInvalidInput
	}
	page.Normalizar()
	list, total, err := uc.repo.List(tipoEntidad, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntidadResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntidadResponse(e))
	}
	return &dto.EntidadListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// Eliminar desactiva la entidad (borrado lógico); su documento queda
// disponible para una futura entidad activa.
func (uc *EntidadUseCase) Eliminar(id string) error {
	entidad, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entidad == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEntidadResponse(e *entity.EntidadComercial) *dto.EntidadResponse {
	return &dto.EntidadResponse{
		ID:              e.ID,
		TipoEntidad:     e.TipoEntidad,
		TipoDocumento:   e.TipoDocumento,
		NumeroDocumento: e.NumeroDocumento,
		RazonSocial:     e.RazonSocial,
		NombreComercial: e.NombreComercial,
		Email:           e.Email,
		Telefono:        e.Telefono,
		Direccion:       e.Direccion,
		Activo:          e.Activo,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
