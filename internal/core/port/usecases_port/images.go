package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetImagesUseCasePort interface {
	Execute(ctx context.Context, owner domain.ImageOwner, ownerID int64) ([]domain.Image, error)
}

type AddImageUseCasePort interface {
	Execute(ctx context.Context, owner domain.ImageOwner, ownerID int64, in domain.ImageInput) (*domain.Image, error)
}

type DeleteImageUseCasePort interface {
	Execute(ctx context.Context, owner domain.ImageOwner, id int64) error
}
