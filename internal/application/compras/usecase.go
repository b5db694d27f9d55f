package compras

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	appinventory "github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	dominventory "github.com/andinosoft/erp-pyme/internal/domain/inventory"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// CompraUseCase ciclo de vida de órdenes de compra: creación, edición y
// borrado mientras están Pendientes, y la transición a Recibida que genera
// los movimientos ENTRADA en el inventario.
type CompraUseCase struct {
	txRunner    TxRunner
	compraRepo  repository.CompraRepository
	almacenRepo repository.AlmacenRepository
	entidadRepo repository.EntidadRepository
}

// NewCompraUseCase construye el caso de uso. compraRepo atado al pool se usa
// solo para lecturas; toda escritura pasa por el txRunner.
func NewCompraUseCase(
	txRunner TxRunner,
	compraRepo repository.CompraRepository,
	almacenRepo repository.AlmacenRepository,
	entidadRepo repository.EntidadRepository,
) *CompraUseCase {
	return &CompraUseCase{
		txRunner:    txRunner,
		compraRepo:  compraRepo,
		almacenRepo: almacenRepo,
		entidadRepo: entidadRepo,
	}
}

// Crear valida proveedor, almacén y líneas, calcula totales y persiste la
// orden en estado Pendiente.
func (uc *CompraUseCase) Crear(ctx context.Context, usuarioID string, in dto.CreateCompraRequest) (*dto.CompraResponse, error) {
	if in.ProveedorID == "" || in.AlmacenID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Descuento.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	proveedor, err := uc.entidadRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil || !proveedor.Activo {
		return nil, domain.ErrNotFound
	}
	if !proveedor.EsProveedor() {
		return nil, domain.ErrInvalidInput
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil || !almacen.Activo {
		return nil, domain.ErrNotFound
	}

	// Cabecera y líneas se insertan en una misma transacción: un fallo a
	// mitad de las líneas no deja una compra parcial confirmada.
	var compra *entity.Compra
	err = uc.txRunner.RunCompra(ctx, func(
		_ repository.MovimientoRepository,
		_ repository.StockRepository,
		productoRepo repository.ProductoRepository,
		compraRepo repository.CompraRepository,
	) error {
		items, err := resolverItems(productoRepo, in.Items)
		if err != nil {
			return err
		}
		numero, err := compraRepo.NextNumero()
		if err != nil {
			return err
		}
		now := time.Now()
		compra = &entity.Compra{
			ID:          uuid.New().String(),
			Numero:      numero,
			ProveedorID: in.ProveedorID,
			AlmacenID:   in.AlmacenID,
			Estado:      entity.CompraPendiente,
			Descuento:   in.Descuento,
			Items:       items,
			CreatedBy:   usuarioID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		compra.CalcularTotales()
		if compra.Total.IsNegative() {
			return domain.ErrInvalidInput
		}
		return compraRepo.Create(compra)
	})
	if err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// resolverItems valida las líneas y resuelve cada producto por código.
func resolverItems(productoRepo repository.ProductoRepository, in []dto.CompraItemRequest) ([]entity.CompraItem, error) {
	items := make([]entity.CompraItem, 0, len(in))
	for _, it := range in {
		if it.CodigoProducto == "" || it.Cantidad <= 0 || it.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto, err := productoRepo.GetByCodigo(it.CodigoProducto)
		if err != nil {
			return nil, err
		}
		if producto == nil || !producto.Activo {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.CompraItem{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			CodigoProducto: producto.Codigo,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
		})
	}
	return items, nil
}

// GetByID obtiene una compra con sus líneas.
func (uc *CompraUseCase) GetByID(ctx context.Context, id string) (*dto.CompraResponse, error) {
	compra, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, domain.ErrNotFound
	}
	return toCompraResponse(compra), nil
}

// List lista compras, opcionalmente por estado.
func (uc *CompraUseCase) List(ctx context.Context, estado string, page dto.PageRequest) (*dto.CompraListResponse, error) {
	switch estado {
	case "", entity.CompraPendiente, entity.CompraRecibida, entity.CompraCancelada:
	default:
		return nil, domain.ErrInvalidInput
	}
	page.Normalizar()
	list, total, err := uc.compraRepo.List(estado, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompraResponse(c))
	}
	return &dto.CompraListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// Actualizar modifica una compra. Solo se permite mientras está Pendiente;
// en cualquier otro estado la orden está cerrada y retorna ErrConflict.
func (uc *CompraUseCase) Actualizar(ctx context.Context, id string, in dto.UpdateCompraRequest) (*dto.CompraResponse, error) {
	// Releer con FOR UPDATE y reescribir las líneas en la misma transacción:
	// ni edición concurrente con una recepción, ni orden sin líneas si falla
	// el reinsertado.
	var compra *entity.Compra
	err := uc.txRunner.RunCompra(ctx, func(
		_ repository.MovimientoRepository,
		_ repository.StockRepository,
		productoRepo repository.ProductoRepository,
		compraRepo repository.CompraRepository,
	) error {
		var err error
		compra, err = compraRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if compra.Estado != entity.CompraPendiente {
			return domain.ErrConflict
		}

		if in.AlmacenID != nil {
			almacen, err := uc.almacenRepo.GetByID(*in.AlmacenID)
			if err != nil {
				return err
			}
			if almacen == nil || !almacen.Activo {
				return domain.ErrNotFound
			}
			compra.AlmacenID = *in.AlmacenID
		}
		if in.Descuento != nil {
			if in.Descuento.IsNegative() {
				return domain.ErrInvalidInput
			}
			compra.Descuento = *in.Descuento
		}
		if len(in.Items) > 0 {
			items, err := resolverItems(productoRepo, in.Items)
			if err != nil {
				return err
			}
			for i := range items {
				items[i].CompraID = compra.ID
			}
			compra.Items = items
		}
		compra.CalcularTotales()
		if compra.Total.IsNegative() {
			return domain.ErrInvalidInput
		}
		compra.UpdatedAt = time.Now()
		return compraRepo.Update(compra)
	})
	if err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// Eliminar borra una compra Pendiente. Recibida o Cancelada → ErrConflict.
func (uc *CompraUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.txRunner.RunCompra(ctx, func(
		_ repository.MovimientoRepository,
		_ repository.StockRepository,
		_ repository.ProductoRepository,
		compraRepo repository.CompraRepository,
	) error {
		compra, err := compraRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if compra.Estado != entity.CompraPendiente {
			return domain.ErrConflict
		}
		return compraRepo.Delete(id)
	})
}

// CambiarEstado aplica la transición de estado. Al pasar a Recibida genera,
// dentro de la misma transacción, un movimiento ENTRADA por línea con el
// número de la compra como documento de referencia, y actualiza el costo
// promedio del producto.
//
// La guarda sobre el estado previo (releído con FOR UPDATE dentro de la tx)
// hace la operación idempotente en efecto de inventario: reenviar el mismo
// cambio cuando ya está Recibida retorna ErrConflict sin crear movimientos.
func (uc *CompraUseCase) CambiarEstado(ctx context.Context, id, nuevoEstado, usuarioID string) (*dto.CompraResponse, error) {
	if nuevoEstado != entity.CompraRecibida && nuevoEstado != entity.CompraCancelada {
		return nil, domain.ErrInvalidInput
	}

	var resultado *entity.Compra
	err := uc.txRunner.RunCompra(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
		compraRepo repository.CompraRepository,
	) error {
		compra, err := compraRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if !entity.TransicionCompraValida(compra.Estado, nuevoEstado) {
			return domain.ErrConflict
		}
		if err := compraRepo.UpdateEstado(id, nuevoEstado); err != nil {
			return err
		}
		compra.Estado = nuevoEstado

		if nuevoEstado == entity.CompraRecibida {
			if err := uc.aplicarRecepcion(movRepo, stockRepo, productoRepo, compra, usuarioID); err != nil {
				return err
			}
		}
		resultado = compra
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCompraResponse(resultado), nil
}

// aplicarRecepcion genera un ENTRADA por línea y recalcula el costo promedio
// ponderado con el precio unitario de la compra.
func (uc *CompraUseCase) aplicarRecepcion(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	compra *entity.Compra,
	usuarioID string,
) error {
	now := time.Now()
	for _, item := range compra.Items {
		producto, err := productoRepo.GetByCodigo(item.CodigoProducto)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		nuevoCosto := dominventory.CostoPromedio(producto.Stock, producto.Costo, item.Cantidad, item.PrecioUnitario)
		if err := productoRepo.UpdateCosto(producto.ID, nuevoCosto); err != nil {
			return err
		}

		mov := &entity.MovimientoInventario{
			ID:           uuid.New().String(),
			ProductoID:   producto.ID,
			AlmacenID:    compra.AlmacenID,
			Tipo:         entity.MovimientoEntrada,
			Cantidad:     item.Cantidad,
			Motivo:       "Recepción de compra",
			DocumentoRef: compra.Numero,
			UsuarioID:    usuarioID,
			Fecha:        now,
			CreatedAt:    now,
		}
		if err := appinventory.AplicarMovimientoEnTx(movRepo, stockRepo, productoRepo, mov); err != nil {
			return err
		}
	}
	return nil
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	items := make([]dto.CompraItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CompraItemResponse{
			ProductoID:     it.ProductoID,
			CodigoProducto: it.CodigoProducto,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			TotalLinea:     it.TotalLinea,
		})
	}
	return &dto.CompraResponse{
		ID:          c.ID,
		Numero:      c.Numero,
		ProveedorID: c.ProveedorID,
		AlmacenID:   c.AlmacenID,
		Estado:      c.Estado,
		Subtotal:    c.Subtotal,
		Descuento:   c.Descuento,
		Total:       c.Total,
		Items:       items,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
