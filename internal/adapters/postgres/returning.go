package postgres_adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// returningID выполняет мутацию вида "... RETURNING id".
// Ни одной затронутой строки - (nil, nil), ошибка драйвера - (nil, err).
func returningID(ctx context.Context, db DBTX, logger port.LoggerPort, op, query string, args ...any) (*int64, error) {
	var id int64
	err := db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Debug("No rows matched.", nil)
			return nil, nil
		}
		logger.Error("Mutation failed", err, port.Fields{"query": query})
		return nil, dbError(op, err)
	}
	logger.Debug("Row affected.", port.Fields{"affected_id": id})
	return &id, nil
}
