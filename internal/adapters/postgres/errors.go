package postgres_adapter

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// Коды ошибок PostgreSQL, которые превращаются в доменные ошибки.
const (
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	pgNotNullViolation          = "23502"
	pgCheckViolation            = "23514"
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
	pgDuplicateObject           = "42710"
	pgDuplicateTable            = "42P07"
)

// dbError оборачивает ошибку драйвера. Нарушения ограничений превращаются в *domain.ConstraintError,
// остальное (сеть, таймауты) возвращается как есть с контекстом операции.
func dbError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var kind error
	switch pgErr.Code {
	case pgUniqueViolation:
		kind = domain.ErrAlreadyExists
	case pgForeignKeyViolation:
		kind = domain.ErrInvalidReference
	case pgNotNullViolation, pgCheckViolation, pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		kind = domain.ErrInvalidInput
	default:
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w", op, &domain.ConstraintError{
		Kind:       kind,
		Constraint: pgErr.ConstraintName,
		Detail:     pgErr.Detail,
		Err:        err,
	})
}

func isPgCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, code := range codes {
		if pgErr.Code == code {
			return true
		}
	}
	return false
}
