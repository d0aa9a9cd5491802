package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetRolesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Role, error)
}

type GetStatusesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Status, error)
}

type CreateStatusUseCasePort interface {
	Execute(ctx context.Context, name string) (int64, error)
}

type GetPropertyTypesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.PropertyType, error)
}

type CreatePropertyTypeUseCasePort interface {
	Execute(ctx context.Context, name string) (int64, error)
}
