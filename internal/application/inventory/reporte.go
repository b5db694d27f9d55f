package inventory

import (
	"context"
	"time"

	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// ReporteUseCase genera la representación PDF del stock actual.
type ReporteUseCase struct {
	stockRepo repository.StockRepository
	generador GeneradorReporteStock
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(stockRepo repository.StockRepository, generador GeneradorReporteStock) *ReporteUseCase {
	return &ReporteUseCase{stockRepo: stockRepo, generador: generador}
}

// ReporteStockPDF arma el PDF con todas las filas de stock del almacén
// indicado (vacío = todos los almacenes).
func (uc *ReporteUseCase) ReporteStockPDF(ctx context.Context, almacenID string) ([]byte, error) {
	filas, _, err := uc.stockRepo.List(repository.FiltroStock{
		AlmacenID: almacenID,
		SortBy:    "codigo",
		Order:     "asc",
		Limit:     5000,
	})
	if err != nil {
		return nil, err
	}
	return uc.generador.GenerarPDF(filas, time.Now())
}
