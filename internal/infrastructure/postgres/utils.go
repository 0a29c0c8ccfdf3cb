package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// Índices únicos del esquema.
const (
	constraintCompanyRUT = "companies_rut_key"
	constraintUserEmail  = "users_email_key"
)

// uniqueViolation traduce una violación de constraint único (23505) al error de dominio del índice.
// Devuelve nil si err no es una violación única.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintUserEmail:
		return domain.ErrEmailAlreadyExists
	case constraintCompanyRUT:
		return domain.ErrDuplicate
	}
	return domain.ErrDuplicate
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUUID evita enviar a PostgreSQL ids mal formados: se tratan como inexistentes.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// pageArgs traduce limit <= 0 a LIMIT ALL (NULL).
func pageArgs(limit, offset int) (any, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return nil, offset
	}
	return limit, offset
}
