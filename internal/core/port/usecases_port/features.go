package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetFeaturesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Feature, error)
}

type GetFeatureByIDUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Feature, error)
}

type CreateFeatureUseCasePort interface {
	Execute(ctx context.Context, name string) (int64, error)
}

type UpdateFeatureUseCasePort interface {
	Execute(ctx context.Context, id int64, name string) error
}

type DeleteFeatureUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
