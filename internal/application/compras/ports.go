package compras

import (
	"context"

	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta las escrituras de compras dentro de una transacción, con
// los repositorios de inventario y de compras atados a la misma tx. La
// cabecera y sus líneas se confirman juntas, y en la recepción también el
// cambio de estado y los movimientos ENTRADA.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
		compraRepo repository.CompraRepository,
	) error) error
}
