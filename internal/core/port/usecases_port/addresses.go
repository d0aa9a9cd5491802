package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetAddressesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Address, error)
}

type GetAddressByIDUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Address, error)
}

type CreateAddressUseCasePort interface {
	Execute(ctx context.Context, in domain.AddressInput) (int64, error)
}

type UpdateAddressUseCasePort interface {
	Execute(ctx context.Context, id int64, in domain.AddressInput) error
}

type DeleteAddressUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
