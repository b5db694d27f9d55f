package inventory

import (
	"context"
	"time"

	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: stock, kardex y agregado del producto cambian juntos o no cambian.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// GeneradorReporteStock produce la representación PDF del listado de stock.
type GeneradorReporteStock interface {
	GenerarPDF(filas []repository.StockFila, generadoEn time.Time) ([]byte, error)
}
