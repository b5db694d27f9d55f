package inventory

import (
	"context"
	"time"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// ConsultaUseCase lecturas del inventario: kardex, stock por almacén,
// alertas y catálogo de motivos.
type ConsultaUseCase struct {
	movRepo    repository.MovimientoRepository
	stockRepo  repository.StockRepository
	motivoRepo repository.MotivoRepository
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	motivoRepo repository.MotivoRepository,
) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo, stockRepo: stockRepo, motivoRepo: motivoRepo}
}

// Kardex consulta paginada del libro de movimientos, ordenada por fecha
// descendente. Fechas en formato YYYY-MM-DD; FechaHasta es inclusiva.
func (uc *ConsultaUseCase) Kardex(ctx context.Context, in dto.KardexRequest) (*dto.KardexResponse, error) {
	if in.TipoMovimiento != "" && !entity.TipoMovimientoValido(in.TipoMovimiento) {
		return nil, domain.ErrInvalidInput
	}
	page := dto.PageRequest{Page: in.Page, Limit: in.PageSize}
	page.Normalizar()

	filtro := repository.FiltroMovimientos{
		ProductoID: in.ProductoID,
		AlmacenID:  in.AlmacenID,
		Tipo:       in.TipoMovimiento,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}
	if in.FechaDesde != "" {
		t, err := time.Parse("2006-01-02", in.FechaDesde)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.FechaDesde = &t
	}
	if in.FechaHasta != "" {
		t, err := time.Parse("2006-01-02", in.FechaHasta)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fin := t.Add(24*time.Hour - time.Nanosecond)
		filtro.FechaHasta = &fin
	}

	movs, total, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.KardexResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// Stock listado paginado de stock por almacén con estado derivado
// (NORMAL / BAJO / CRITICO) calculado por fila frente al mínimo efectivo.
func (uc *ConsultaUseCase) Stock(ctx context.Context, in dto.StockRequest) (*dto.StockListResponse, error) {
	switch in.Estado {
	case "", entity.EstadoStockNormal, entity.EstadoStockBajo, entity.EstadoStockCritico:
	default:
		return nil, domain.ErrInvalidInput
	}
	page := dto.PageRequest{Page: in.Page, Limit: in.Limit}
	page.Normalizar()

	filas, total, err := uc.stockRepo.List(repository.FiltroStock{
		AlmacenID:  in.AlmacenID,
		ProductoID: in.ProductoID,
		Estado:     in.Estado,
		SortBy:     in.SortBy,
		Order:      in.Order,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockFilaResponse, 0, len(filas))
	for _, f := range filas {
		items = append(items, toStockFilaResponse(f))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// Alertas devuelve las filas de stock en estado BAJO o CRITICO.
func (uc *ConsultaUseCase) Alertas(ctx context.Context, almacenID string) ([]dto.StockFilaResponse, error) {
	items := make([]dto.StockFilaResponse, 0)
	for _, estado := range []string{entity.EstadoStockCritico, entity.EstadoStockBajo} {
		filas, _, err := uc.stockRepo.List(repository.FiltroStock{
			AlmacenID: almacenID,
			Estado:    estado,
			Limit:     500,
		})
		if err != nil {
			return nil, err
		}
		for _, f := range filas {
			items = append(items, toStockFilaResponse(f))
		}
	}
	return items, nil
}

// Motivos lista el catálogo de motivos activos, opcionalmente por tipo.
func (uc *ConsultaUseCase) Motivos(ctx context.Context, tipo string) ([]dto.MotivoResponse, error) {
	if tipo != "" && !entity.TipoMovimientoValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	motivos, err := uc.motivoRepo.ListByTipo(tipo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MotivoResponse, 0, len(motivos))
	for _, m := range motivos {
		items = append(items, dto.MotivoResponse{
			ID:          m.ID,
			Codigo:      m.Codigo,
			Descripcion: m.Descripcion,
			Tipo:        m.Tipo,
		})
	}
	return items, nil
}

func toMovimientoResponse(m *entity.MovimientoInventario) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:            m.ID,
		ProductoID:    m.ProductoID,
		AlmacenID:     m.AlmacenID,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		DocumentoRef:  m.DocumentoRef,
		Observaciones: m.Observaciones,
		UsuarioID:     m.UsuarioID,
		Fecha:         m.Fecha,
	}
}

func toStockFilaResponse(f repository.StockFila) dto.StockFilaResponse {
	return dto.StockFilaResponse{
		ProductoID:     f.ProductoID,
		CodigoProducto: f.CodigoProducto,
		NombreProducto: f.NombreProducto,
		AlmacenID:      f.AlmacenID,
		NombreAlmacen:  f.NombreAlmacen,
		Cantidad:       f.Cantidad,
		StockMinimo:    f.StockMinimo,
		Estado:         f.Estado,
	}
}
