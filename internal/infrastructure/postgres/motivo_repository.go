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

var _ repository.MotivoRepository = (*MotivoRepo)(nil)

type MotivoRepo struct {
	q Querier
}

func NewMotivoRepository(q Querier) *MotivoRepo {
	return &MotivoRepo{q: q}
}

func (r *MotivoRepo) Create(m *entity.MotivoMovimiento) error {
	query := `
		INSERT INTO motivos_movimiento (id, codigo, descripcion, tipo, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Codigo, m.Descripcion, m.Tipo, m.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert motivo: %w", err)
	}
	return nil
}

func (r *MotivoRepo) GetByID(id string) (*entity.MotivoMovimiento, error) {
	query := `SELECT id, codigo, descripcion, tipo, activo, created_at
		FROM motivos_movimiento WHERE id = $1`
	return r.scanOne(query, id)
}

func (r *MotivoRepo) GetByCodigo(codigo string) (*entity.MotivoMovimiento, error) {
	query := `SELECT id, codigo, descripcion, tipo, activo, created_at
		FROM motivos_movimiento WHERE codigo = $1`
	return r.scanOne(query, codigo)
}

func (r *MotivoRepo) scanOne(query string, arg any) (*entity.MotivoMovimiento, error) {
	var m entity.MotivoMovimiento
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Codigo, &m.Descripcion, &m.Tipo, &m.Activo, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get motivo: %w", err)
	}
	return &m, nil
}

func (r *MotivoRepo) ListByTipo(tipo string) ([]*entity.MotivoMovimiento, error) {
	query := `SELECT id, codigo, descripcion, tipo, activo, created_at
		FROM motivos_movimiento WHERE activo = true`
	args := []any{}
	if tipo != "" {
		query += ` AND tipo = $1`
		args = append(args, tipo)
	}
	query += ` ORDER BY codigo ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list motivos: %w", err)
	}
	defer rows.Close()

	var motivos []*entity.MotivoMovimiento
	for rows.Next() {
		var m entity.MotivoMovimiento
		if err := rows.Scan(&m.ID, &m.Codigo, &m.Descripcion, &m.Tipo, &m.Activo, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan motivo: %w", err)
		}
		motivos = append(motivos, &m)
	}
	return motivos, rows.Err()
}
