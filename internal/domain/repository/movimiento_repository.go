package repository

import (
	"time"

	"github.com/andinosoft/erp-pyme/internal/domain/entity"
)

// FiltroMovimientos filtros para la consulta del kardex.
type FiltroMovimientos struct {
	ProductoID string
	AlmacenID  string
	Tipo       string // ENTRADA, SALIDA, AJUSTE; vacío = todos
	FechaDesde *time.Time
	FechaHasta *time.Time
	Limit      int
	Offset     int
}

// MovimientoRepository define el puerto de persistencia del kardex.
// El libro es append-only: solo Create y lecturas, nunca update ni delete.
type MovimientoRepository interface {
	Create(mov *entity.MovimientoInventario) error
	GetByID(id string) (*entity.MovimientoInventario, error)
	// List devuelve movimientos ordenados por fecha descendente y el total sin paginar.
	List(filtro FiltroMovimientos) ([]*entity.MovimientoInventario, int, error)
}
