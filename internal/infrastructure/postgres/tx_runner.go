package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andinosoft/erp-pyme/internal/application/compras"
	"github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner y compras.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	stockRepo := NewStockRepository(tx)
	productoRepo := NewProductoRepository(tx)

	if err := fn(movRepo, stockRepo, productoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia una transacción con repos de inventario y compras
// (para la recepción de órdenes de compra).
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	compraRepo repository.CompraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	stockRepo := NewStockRepository(tx)
	productoRepo := NewProductoRepository(tx)
	compraRepo := NewCompraRepository(tx)

	if err := fn(movRepo, stockRepo, productoRepo, compraRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
