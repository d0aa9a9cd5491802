package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetListingsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.ListingView, error)
}

type GetListingByIDUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.ListingView, error)
}

type CreateListingUseCasePort interface {
	Execute(ctx context.Context, in domain.ListingInput) (int64, error)
}

type UpdateListingUseCasePort interface {
	Execute(ctx context.Context, id int64, in domain.ListingInput) error
}

type UpdateListingPriceUseCasePort interface {
	Execute(ctx context.Context, id int64, price float64) error
}

type UpdateListingStatusUseCasePort interface {
	Execute(ctx context.Context, id int64, statusID int64) error
}

type DeleteListingUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}

type GetListingFeaturesUseCasePort interface {
	Execute(ctx context.Context, listingID int64) ([]domain.Feature, error)
}

type AddListingFeatureUseCasePort interface {
	Execute(ctx context.Context, listingID, featureID int64) error
}

type RemoveListingFeatureUseCasePort interface {
	Execute(ctx context.Context, listingID, featureID int64) error
}
