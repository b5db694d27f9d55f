package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// MovimientoUseCase registra movimientos de inventario de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovimientoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	almacenRepo  repository.AlmacenRepository
	motivoRepo   repository.MotivoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	almacenRepo repository.AlmacenRepository,
	motivoRepo repository.MotivoRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		almacenRepo:  almacenRepo,
		motivoRepo:   motivoRepo,
	}
}

// AjusteInput entrada para registrar un ajuste manual de stock.
// Cantidad es el delta con signo, distinto de cero. Se indica MotivoID
// (catálogo) o Motivo (texto libre); al menos uno.
type AjusteInput struct {
	ProductoID    string
	AlmacenID     string
	Cantidad      int64
	MotivoID      string
	Motivo        string
	Observaciones string
	UsuarioID     string
}

// RegistrarAjuste valida la entrada, abre una transacción y aplica el ajuste:
// bloqueo de la fila de stock (cantidad 0 si no existe), rechazo si el
// resultado queda negativo, upsert del stock, inserción en el kardex y
// recálculo del agregado del producto. Todo se confirma o se revierte junto.
func (uc *MovimientoUseCase) RegistrarAjuste(ctx context.Context, in AjusteInput) (*entity.MovimientoInventario, error) {
	if in.ProductoID == "" || in.AlmacenID == "" || in.Cantidad == 0 {
		return nil, domain.ErrInvalidInput
	}

	motivo := in.Motivo
	if in.MotivoID != "" {
		m, err := uc.motivoRepo.GetByID(in.MotivoID)
		if err != nil {
			return nil, err
		}
		if m == nil || !m.Activo {
			return nil, domain.ErrNotFound
		}
		if m.Tipo != entity.MovimientoAjuste {
			return nil, domain.ErrInvalidInput
		}
		motivo = m.Descripcion
	}
	if motivo == "" {
		return nil, domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil || !almacen.Activo {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.MovimientoInventario{
		ID:            uuid.New().String(),
		ProductoID:    in.ProductoID,
		AlmacenID:     in.AlmacenID,
		Tipo:          entity.MovimientoAjuste,
		Cantidad:      in.Cantidad,
		MotivoID:      in.MotivoID,
		Motivo:        motivo,
		Observaciones: in.Observaciones,
		UsuarioID:     in.UsuarioID,
		Fecha:         now,
		CreatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error {
		return AplicarMovimientoEnTx(movRepo, stockRepo, productoRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// AplicarMovimientoEnTx ejecuta el patrón común de todo movimiento usando
// repositorios atados a la transacción del caller:
//
//  1. SELECT FOR UPDATE sobre stock_almacen (cantidad 0 si la fila no existe).
//  2. nuevo = cantidad + delta; rechaza ErrInsufficientStock si queda negativo.
//  3. Upsert de la fila de stock.
//  4. Inserción del movimiento con StockAnterior/StockNuevo.
//  5. Recalcula producto.stock = SUM(stock_almacen.cantidad) y lo persiste.
//
// Lo usan el ajuste manual y la recepción de compras (ENTRADA por línea).
func AplicarMovimientoEnTx(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	mov *entity.MovimientoInventario,
) error {
	stock, err := stockRepo.GetForUpdate(mov.ProductoID, mov.AlmacenID)
	if err != nil {
		return err
	}

	anterior := stock.Cantidad
	nuevo := anterior + mov.Cantidad
	if nuevo < 0 {
		return domain.ErrInsufficientStock
	}

	stock.Cantidad = nuevo
	stock.UpdatedAt = mov.Fecha
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}

	mov.StockAnterior = anterior
	mov.StockNuevo = nuevo
	if err := movRepo.Create(mov); err != nil {
		return err
	}

	total, err := stockRepo.SumByProducto(mov.ProductoID)
	if err != nil {
		return err
	}
	return productoRepo.UpdateStock(mov.ProductoID, total)
}
