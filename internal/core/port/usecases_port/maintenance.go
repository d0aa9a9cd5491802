package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type SeedDatabaseUseCasePort interface {
	Execute(ctx context.Context, opts domain.SeedOptions) (*domain.SeedStats, error)
}

type LoadFixturesUseCasePort interface {
	Execute(ctx context.Context, fixtures domain.Fixtures) (*domain.SeedStats, error)
}

type TruncateDatabaseUseCasePort interface {
	Execute(ctx context.Context) error
}

type MigrateDatabaseUseCasePort interface {
	Execute(ctx context.Context) error
}
