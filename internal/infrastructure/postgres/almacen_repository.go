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

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

type AlmacenRepo struct {
	q Querier
}

func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

func (r *AlmacenRepo) Create(a *entity.Almacen) error {
	query := `
		INSERT INTO almacenes (id, codigo, nombre, direccion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Codigo, a.Nombre, a.Direccion, a.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert almacen: %w", err)
	}
	return nil
}

func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	query := `SELECT id, codigo, nombre, direccion, activo, created_at, updated_at
		FROM almacenes WHERE id = $1`
	return r.scanOne(query, id)
}

func (r *AlmacenRepo) GetByCodigo(codigo string) (*entity.Almacen, error) {
	query := `SELECT id, codigo, nombre, direccion, activo, created_at, updated_at
		FROM almacenes WHERE codigo = $1`
	return r.scanOne(query, codigo)
}

func (r *AlmacenRepo) scanOne(query string, arg any) (*entity.Almacen, error) {
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Codigo, &a.Nombre, &a.Direccion, &a.Activo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get almacen: %w", err)
	}
	return &a, nil
}

func (r *AlmacenRepo) Update(a *entity.Almacen) error {
	query := `
		UPDATE almacenes SET codigo = $2, nombre = $3, direccion = $4, activo = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, a.ID, a.Codigo, a.Nombre, a.Direccion, a.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update almacen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM almacenes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count almacenes: %w", err)
	}

	query := `SELECT id, codigo, nombre, direccion, activo, created_at, updated_at
		FROM almacenes ORDER BY codigo ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()

	var almacenes []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Direccion, &a.Activo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan almacen: %w", err)
		}
		almacenes = append(almacenes, &a)
	}
	return almacenes, total, rows.Err()
}
