package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo persiste el libro de movimientos (kardex). Solo inserta,
// nunca actualiza ni borra: el historial es inmutable.
type MovimientoRepo struct {
	q Querier
}

func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

func (r *MovimientoRepo) Create(mov *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario
			(id, producto_id, almacen_id, tipo, cantidad, stock_anterior, stock_nuevo,
			 motivo_id, motivo, documento_ref, observaciones, usuario_id, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProductoID, mov.AlmacenID, mov.Tipo, mov.Cantidad,
		mov.StockAnterior, mov.StockNuevo, nilIfEmpty(mov.MotivoID), mov.Motivo,
		nilIfEmpty(mov.DocumentoRef), mov.Observaciones, mov.UsuarioID, mov.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoInventario, error) {
	query := `
		SELECT id, producto_id, almacen_id, tipo, cantidad, stock_anterior, stock_nuevo,
		       COALESCE(motivo_id::text, ''), motivo, COALESCE(documento_ref, ''),
		       observaciones, usuario_id, fecha, created_at
		FROM movimientos_inventario WHERE id = $1`
	var m entity.MovimientoInventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductoID, &m.AlmacenID, &m.Tipo, &m.Cantidad,
		&m.StockAnterior, &m.StockNuevo, &m.MotivoID, &m.Motivo,
		&m.DocumentoRef, &m.Observaciones, &m.UsuarioID, &m.Fecha, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

type movimientoDB struct {
	ID            string    `db:"id"`
	ProductoID    string    `db:"producto_id"`
	AlmacenID     string    `db:"almacen_id"`
	Tipo          string    `db:"tipo"`
	Cantidad      int64     `db:"cantidad"`
	StockAnterior int64     `db:"stock_anterior"`
	StockNuevo    int64     `db:"stock_nuevo"`
	MotivoID      string    `db:"motivo_id"`
	Motivo        string    `db:"motivo"`
	DocumentoRef  string    `db:"documento_ref"`
	Observaciones string    `db:"observaciones"`
	UsuarioID     string    `db:"usuario_id"`
	Fecha         time.Time `db:"fecha"`
	CreatedAt     time.Time `db:"created_at"`
}

// List devuelve movimientos ordenados del más reciente al más antiguo,
// con el total sin paginar para el encabezado de paginación.
func (r *MovimientoRepo) List(filtro repository.FiltroMovimientos) ([]*entity.MovimientoInventario, int, error) {
	base := sq.Select().
		From("movimientos_inventario m").
		PlaceholderFormat(sq.Dollar)

	if filtro.ProductoID != "" {
		base = base.Where(sq.Eq{"m.producto_id": filtro.ProductoID})
	}
	if filtro.AlmacenID != "" {
		base = base.Where(sq.Eq{"m.almacen_id": filtro.AlmacenID})
	}
	if filtro.Tipo != "" {
		base = base.Where(sq.Eq{"m.tipo": filtro.Tipo})
	}
	if filtro.FechaDesde != nil {
		base = base.Where(sq.GtOrEq{"m.fecha": *filtro.FechaDesde})
	}
	if filtro.FechaHasta != nil {
		base = base.Where(sq.LtOrEq{"m.fecha": *filtro.FechaHasta})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}

	query := base.Columns(
		"m.id", "m.producto_id", "m.almacen_id", "m.tipo", "m.cantidad",
		"m.stock_anterior", "m.stock_nuevo",
		"COALESCE(m.motivo_id::text, '') AS motivo_id", "m.motivo",
		"COALESCE(m.documento_ref, '') AS documento_ref",
		"m.observaciones", "m.usuario_id", "m.fecha", "m.created_at",
	).OrderBy("m.fecha DESC", "m.created_at DESC")
	if filtro.Limit > 0 {
		query = query.Limit(uint64(filtro.Limit)).Offset(uint64(filtro.Offset))
	}
	querySQL, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []movimientoDB
	if err := pgxscan.Select(context.Background(), r.q, &rows, querySQL, args...); err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	movs := make([]*entity.MovimientoInventario, 0, len(rows))
	for _, row := range rows {
		m := entity.MovimientoInventario(row)
		movs = append(movs, &m)
	}
	return movs, total, nil
}
