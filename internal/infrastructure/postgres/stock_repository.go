package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en un almacén.
// Si la fila no existe devuelve cantidad 0 (la fila se crea con el primer movimiento).
func (r *StockRepo) Get(productoID, almacenID string) (*entity.StockAlmacen, error) {
	query := `
		SELECT producto_id, almacen_id, cantidad, stock_minimo, updated_at
		FROM stock_almacen WHERE producto_id = $1 AND almacen_id = $2`
	return r.scanOne(query, productoID, almacenID)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productoID, almacenID string) (*entity.StockAlmacen, error) {
	query := `
		SELECT producto_id, almacen_id, cantidad, stock_minimo, updated_at
		FROM stock_almacen WHERE producto_id = $1 AND almacen_id = $2
		FOR UPDATE`
	return r.scanOne(query, productoID, almacenID)
}

func (r *StockRepo) scanOne(query, productoID, almacenID string) (*entity.StockAlmacen, error) {
	var s entity.StockAlmacen
	err := r.q.QueryRow(context.Background(), query, productoID, almacenID).Scan(
		&s.ProductoID, &s.AlmacenID, &s.Cantidad, &s.StockMinimo, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockAlmacen{ProductoID: productoID, AlmacenID: almacenID, Cantidad: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y almacén).
func (r *StockRepo) Upsert(stock *entity.StockAlmacen) error {
	query := `
		INSERT INTO stock_almacen (producto_id, almacen_id, cantidad, stock_minimo, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (producto_id, almacen_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductoID, stock.AlmacenID, stock.Cantidad, stock.StockMinimo)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// SumByProducto suma las cantidades del producto en todos los almacenes.
func (r *StockRepo) SumByProducto(productoID string) (int64, error) {
	query := `SELECT COALESCE(SUM(cantidad), 0) FROM stock_almacen WHERE producto_id = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productoID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// stockFilaDB fila del listado con tags para scany.
type stockFilaDB struct {
	ProductoID     string `db:"producto_id"`
	CodigoProducto string `db:"codigo_producto"`
	NombreProducto string `db:"nombre_producto"`
	AlmacenID      string `db:"almacen_id"`
	NombreAlmacen  string `db:"nombre_almacen"`
	Cantidad       int64  `db:"cantidad"`
	StockMinimo    int64  `db:"stock_minimo"`
	Estado         string `db:"estado"`
}

// estadoExpr clasifica cada fila frente a su mínimo efectivo
// (override del almacén o mínimo del producto). Replica entity.EstadoStock.
const estadoExpr = `
	CASE
		WHEN COALESCE(s.stock_minimo, p.stock_minimo) <= 0 THEN 'NORMAL'
		WHEN s.cantidad * 2 <= COALESCE(s.stock_minimo, p.stock_minimo) THEN 'CRITICO'
		WHEN s.cantidad < COALESCE(s.stock_minimo, p.stock_minimo) THEN 'BAJO'
		ELSE 'NORMAL'
	END`

// List devuelve filas de stock con producto y almacén, estado derivado por
// fila, y el total sin paginar. Filtros dinámicos construidos con squirrel.
func (r *StockRepo) List(filtro repository.FiltroStock) ([]repository.StockFila, int, error) {
	inner := sq.Select(
		"s.producto_id",
		"p.codigo AS codigo_producto",
		"p.nombre AS nombre_producto",
		"s.almacen_id",
		"a.nombre AS nombre_almacen",
		"s.cantidad",
		"COALESCE(s.stock_minimo, p.stock_minimo) AS stock_minimo",
		estadoExpr+" AS estado",
	).
		From("stock_almacen s").
		Join("productos p ON p.id = s.producto_id").
		Join("almacenes a ON a.id = s.almacen_id").
		Where(sq.Eq{"p.activo": true})

	if filtro.AlmacenID != "" {
		inner = inner.Where(sq.Eq{"s.almacen_id": filtro.AlmacenID})
	}
	if filtro.ProductoID != "" {
		inner = inner.Where(sq.Eq{"s.producto_id": filtro.ProductoID})
	}

	outer := sq.Select("*").FromSelect(inner, "t").PlaceholderFormat(sq.Dollar)
	if filtro.Estado != "" {
		outer = outer.Where(sq.Eq{"t.estado": filtro.Estado})
	}

	countSQL, countArgs, err := sq.Select("COUNT(*)").FromSelect(inner, "t").
		PlaceholderFormat(sq.Dollar).
		Where(whereEstado(filtro.Estado)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	outer = outer.OrderBy(stockOrderBy(filtro.SortBy, filtro.Order))
	if filtro.Limit > 0 {
		outer = outer.Limit(uint64(filtro.Limit)).Offset(uint64(filtro.Offset))
	}
	querySQL, args, err := outer.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []stockFilaDB
	if err := pgxscan.Select(context.Background(), r.q, &rows, querySQL, args...); err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	filas := make([]repository.StockFila, 0, len(rows))
	for _, row := range rows {
		filas = append(filas, repository.StockFila(row))
	}
	return filas, total, nil
}

func whereEstado(estado string) sq.Sqlizer {
	if estado == "" {
		return sq.Expr("TRUE")
	}
	return sq.Eq{"t.estado": estado}
}

// stockOrderBy traduce sortBy/order a columnas permitidas (whitelist).
func stockOrderBy(sortBy, order string) string {
	col := "t.codigo_producto"
	switch sortBy {
	case "cantidad":
		col = "t.cantidad"
	case "nombre":
		col = "t.nombre_producto"
	case "estado":
		col = "t.estado"
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}
