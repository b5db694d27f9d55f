package repository

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// StockFila es una fila del listado de stock: StockAlmacen unida con los
// datos del producto y del almacén necesarios para derivar el estado.
type StockFila struct {
	ProductoID     string
	CodigoProducto string
	NombreProducto string
	AlmacenID      string
	NombreAlmacen  string
	Cantidad       int64
	StockMinimo    int64 // mínimo efectivo: override del almacén o el del producto
	Estado         string
}

// FiltroStock filtros para el listado de stock por almacén.
type FiltroStock struct {
	AlmacenID  string
	ProductoID string
	Estado     string // NORMAL, BAJO, CRITICO; vacío = todos
	SortBy     string // cantidad, codigo, nombre
	Order      string // asc, desc
	Limit      int
	Offset     int
}

// StockRepository define el puerto para consultar/actualizar stock por almacén+producto.
// Get/GetForUpdate/Upsert se usan dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productoID, almacenID string) (*entity.StockAlmacen, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productoID, almacenID string) (*entity.StockAlmacen, error)
	Upsert(stock *entity.StockAlmacen) error
	// SumByProducto devuelve la suma de cantidades del producto en todos los almacenes.
	SumByProducto(productoID string) (int64, error)
	// List devuelve filas de stock con datos de producto y el total sin paginar.
	List(filtro FiltroStock) ([]StockFila, int, error)
}
