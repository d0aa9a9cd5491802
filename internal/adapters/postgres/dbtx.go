package postgres_adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс пула, соединения и транзакции.
// Репозитории работают через него и не знают, выполняются ли они внутри транзакции.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner открывает транзакцию. Реализуется *DB и pgxmock.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
