package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, codigo, nombre, descripcion, categoria, precio_venta,
	costo, stock, stock_minimo, unidad_medida, activo, created_at, updated_at`

func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos
			(id, codigo, nombre, descripcion, categoria, precio_venta, costo,
			 stock, stock_minimo, unidad_medida, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria, p.PrecioVenta,
		p.Costo, p.Stock, p.StockMinimo, p.UnidadMedida, p.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(query, id)
}

func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1 AND activo = true`
	return r.scanOne(query, codigo)
}

func (r *ProductoRepo) scanOne(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Categoria, &p.PrecioVenta,
		&p.Costo, &p.Stock, &p.StockMinimo, &p.UnidadMedida, &p.Activo,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET
			codigo = $2, nombre = $3, descripcion = $4, categoria = $5,
			precio_venta = $6, stock_minimo = $7, unidad_medida = $8,
			activo = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria,
		p.PrecioVenta, p.StockMinimo, p.UnidadMedida, p.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) UpdateStock(productoID string, stock int64) error {
	query := `UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, productoID, stock)
	if err != nil {
		return fmt.Errorf("update stock producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) UpdateCosto(productoID string, costo decimal.Decimal) error {
	query := `UPDATE productos SET costo = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, productoID, costo)
	if err != nil {
		return fmt.Errorf("update costo producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) List(limit, offset int, soloActivos bool) ([]*entity.Producto, int, error) {
	where := ""
	if soloActivos {
		where = ` WHERE activo = true`
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM productos`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	query := `SELECT ` + productoColumns + ` FROM productos` + where +
		` ORDER BY codigo ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Categoria, &p.PrecioVenta,
			&p.Costo, &p.Stock, &p.StockMinimo, &p.UnidadMedida, &p.Activo,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, &p)
	}
	return productos, total, rows.Err()
}

func (r *ProductoRepo) Delete(id string) error {
	query := `UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
