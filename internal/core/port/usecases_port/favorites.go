package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetUserFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID int64) ([]domain.FavoriteListing, error)
}

type AddToFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID, listingID int64) error
}

type RemoveFromFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID, listingID int64) error
}
