package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el repositorio traduce a errores de dominio.
const (
	codeUniqueViolation = "23505"
	codeOutOfRange      = "22003" // numeric_value_out_of_range
	codeCheckViolation  = "23514"
)

// pgErrorCode devuelve el SQLSTATE del error, o "" si no viene de Postgres.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgErrorCode(err) == codeUniqueViolation }

// isOutOfRange cubre el desborde de INTEGER y el CHECK (quantity >= 0).
func isOutOfRange(err error) bool {
	switch pgErrorCode(err) {
	case codeOutOfRange, codeCheckViolation:
		return true
	}
	return false
}
