package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta violaciones de restricción UNIQUE (código 23505)
// para mapearlas a domain.ErrDuplicate en los repositorios.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// nilIfEmpty convierte "" a NULL para columnas opcionales con FK.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
