package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo persiste órdenes de compra con sus líneas.
type CompraRepo struct {
	q Querier
}

func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

const compraColumns = `id, numero, proveedor_id, almacen_id, estado, subtotal,
	descuento, total, created_by, created_at, updated_at`

func (r *CompraRepo) Create(c *entity.Compra) error {
	query := `
		INSERT INTO compras
			(id, numero, proveedor_id, almacen_id, estado, subtotal, descuento, total,
			 created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Numero, c.ProveedorID, c.AlmacenID, c.Estado,
		c.Subtotal, c.Descuento, c.Total, c.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	return r.insertItems(c)
}

func (r *CompraRepo) insertItems(c *entity.Compra) error {
	query := `
		INSERT INTO compra_items
			(id, compra_id, producto_id, codigo_producto, cantidad, precio_unitario, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range c.Items {
		item := &c.Items[i]
		_, err := r.q.Exec(context.Background(), query,
			item.ID, c.ID, item.ProductoID, item.CodigoProducto,
			item.Cantidad, item.PrecioUnitario, item.TotalLinea)
		if err != nil {
			return fmt.Errorf("insert compra item: %w", err)
		}
	}
	return nil
}

func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE id = $1`
	return r.getOne(query, id)
}

func (r *CompraRepo) GetByIDForUpdate(id string) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *CompraRepo) getOne(query, id string) (*entity.Compra, error) {
	var c entity.Compra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Numero, &c.ProveedorID, &c.AlmacenID, &c.Estado,
		&c.Subtotal, &c.Descuento, &c.Total, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	items, err := r.loadItems(c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

func (r *CompraRepo) loadItems(compraID string) ([]entity.CompraItem, error) {
	query := `
		SELECT id, compra_id, producto_id, codigo_producto, cantidad, precio_unitario, total_linea
		FROM compra_items WHERE compra_id = $1 ORDER BY codigo_producto ASC`
	rows, err := r.q.Query(context.Background(), query, compraID)
	if err != nil {
		return nil, fmt.Errorf("load compra items: %w", err)
	}
	defer rows.Close()

	var items []entity.CompraItem
	for rows.Next() {
		var it entity.CompraItem
		if err := rows.Scan(&it.ID, &it.CompraID, &it.ProductoID, &it.CodigoProducto,
			&it.Cantidad, &it.PrecioUnitario, &it.TotalLinea); err != nil {
			return nil, fmt.Errorf("scan compra item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update reemplaza cabecera y líneas (borra y reinserta las líneas).
func (r *CompraRepo) Update(c *entity.Compra) error {
	query := `
		UPDATE compras SET
			proveedor_id = $2, almacen_id = $3, subtotal = $4, descuento = $5,
			total = $6, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.ProveedorID, c.AlmacenID, c.Subtotal, c.Descuento, c.Total)
	if err != nil {
		return fmt.Errorf("update compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM compra_items WHERE compra_id = $1`, c.ID); err != nil {
		return fmt.Errorf("clear compra items: %w", err)
	}
	return r.insertItems(c)
}

func (r *CompraRepo) UpdateEstado(id, estado string) error {
	query := `UPDATE compras SET estado = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, estado)
	if err != nil {
		return fmt.Errorf("update estado compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompraRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM compra_items WHERE compra_id = $1`, id); err != nil {
		return fmt.Errorf("delete compra items: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM compras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompraRepo) List(estado string, limit, offset int) ([]*entity.Compra, int, error) {
	countQuery := `SELECT COUNT(*) FROM compras`
	query := `SELECT ` + compraColumns + ` FROM compras`
	args := []any{}
	if estado != "" {
		countQuery += ` WHERE estado = $1`
		query += ` WHERE estado = $1`
		args = append(args, estado)
	}

	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count compras: %w", err)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var compras []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.Numero, &c.ProveedorID, &c.AlmacenID, &c.Estado,
			&c.Subtotal, &c.Descuento, &c.Total, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan compra: %w", err)
		}
		compras = append(compras, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, c := range compras {
		items, err := r.loadItems(c.ID)
		if err != nil {
			return nil, 0, err
		}
		c.Items = items
	}
	return compras, total, nil
}

// NextNumero obtiene el siguiente consecutivo desde una secuencia de base de datos.
func (r *CompraRepo) NextNumero() (string, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('compras_numero_seq')`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("next numero compra: %w", err)
	}
	return fmt.Sprintf("OC-%06d", n), nil
}
