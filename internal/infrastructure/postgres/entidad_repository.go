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

var _ repository.EntidadRepository = (*EntidadRepo)(nil)

type EntidadRepo struct {
	q Querier
}

func NewEntidadRepository(q Querier) *EntidadRepo {
	return &EntidadRepo{q: q}
}

const entidadColumns = `id, tipo_entidad, tipo_documento, numero_documento, razon_social,
	nombre_comercial, email, telefono, direccion, activo, created_at, updated_at`

func (r *EntidadRepo) Create(e *entity.EntidadComercial) error {
	query := `
		INSERT INTO entidades_comerciales
			(id, tipo_entidad, tipo_documento, numero_documento, razon_social,
			 nombre_comercial, email, telefono, direccion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.TipoEntidad, e.TipoDocumento, e.NumeroDocumento, e.RazonSocial,
		e.NombreComercial, e.Email, e.Telefono, e.Direccion, e.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entidad: %w", err)
	}
	return nil
}

func (r *EntidadRepo) GetByID(id string) (*entity.EntidadComercial, error) {
	query := `SELECT ` + entidadColumns + ` FROM entidades_comerciales WHERE id = $1`
	return r.scanOne(query, id)
}

func (r *EntidadRepo) GetByDocumento(tipoDocumento, numeroDocumento string) (*entity.EntidadComercial, error) {
	query := `SELECT ` + entidadColumns + `
		FROM entidades_comerciales
		WHERE tipo_documento = $1 AND numero_documento = $2 AND activo = true`
	return r.scanOne(query, tipoDocumento, numeroDocumento)
}

func (r *EntidadRepo) scanOne(query string, args ...any) (*entity.EntidadComercial, error) {
	var e entity.EntidadComercial
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&e.ID, &e.TipoEntidad, &e.TipoDocumento, &e.NumeroDocumento, &e.RazonSocial,
		&e.NombreComercial, &e.Email, &e.Telefono, &e.Direccion, &e.Activo,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get entidad: %w", err)
	}
	return &e, nil
}

func (r *EntidadRepo) Update(e *entity.EntidadComercial) error {
	query := `
		UPDATE entidades_comerciales SET
			tipo_entidad = $2, tipo_documento = $3, numero_documento = $4,
			razon_social = $5, nombre_comercial = $6, email = $7, telefono = $8,
			direccion = $9, activo = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		e.ID, e.TipoEntidad, e.TipoDocumento, e.NumeroDocumento, e.RazonSocial,
		e.NombreComercial, e.Email, e.Telefono, e.Direccion, e.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update entidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EntidadRepo) List(tipoEntidad string, limit, offset int) ([]*entity.EntidadComercial, int, error) {
	where := ` WHERE activo = true`
	args := []any{}
	if tipoEntidad != "" {
		// AMBOS participa en ambos listados.
		where += ` AND (tipo_entidad = $1 OR tipo_entidad = 'AMBOS')`
		args = append(args, tipoEntidad)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM entidades_comerciales` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entidades: %w", err)
	}

	query := `SELECT ` + entidadColumns + ` FROM entidades_comerciales` + where +
		fmt.Sprintf(` ORDER BY razon_social ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entidades: %w", err)
	}
	defer rows.Close()

	var entidades []*entity.EntidadComercial
	for rows.Next() {
		var e entity.EntidadComercial
		if err := rows.Scan(
			&e.ID, &e.TipoEntidad, &e.TipoDocumento, &e.NumeroDocumento, &e.RazonSocial,
			&e.NombreComercial, &e.Email, &e.Telefono, &e.Direccion, &e.Activo,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan entidad: %w", err)
		}
		entidades = append(entidades, &e)
	}
	return entidades, total, rows.Err()
}

func (r *EntidadRepo) Delete(id string) error {
	query := `UPDATE entidades_comerciales SET activo = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete entidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
