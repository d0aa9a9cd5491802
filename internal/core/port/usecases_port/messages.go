package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type SendMessageUseCasePort interface {
	Execute(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
}

type GetListingMessagesUseCasePort interface {
	Execute(ctx context.Context, listingID int64) ([]domain.Message, error)
}

type GetUserMessagesUseCasePort interface {
	Execute(ctx context.Context, userID int64) ([]domain.Message, error)
}
