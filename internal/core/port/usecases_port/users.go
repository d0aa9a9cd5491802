package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetUsersUseCasePort interface {
	Execute(ctx context.Context) ([]domain.User, error)
}

type GetUserByIDUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.User, error)
}

type CreateUserUseCasePort interface {
	Execute(ctx context.Context, in domain.UserInput) (int64, error)
}

type UpdateUserUseCasePort interface {
	Execute(ctx context.Context, id int64, in domain.UserInput) error
}

type DeleteUserUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}

type GetRealtorAgentUseCasePort interface {
	Execute(ctx context.Context, userID int64) (*domain.RealtorAgent, error)
}

type SaveRealtorAgentUseCasePort interface {
	Execute(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error)
}

// LoginUserUseCasePort проверяет учетные данные и возвращает пользователя.
type LoginUserUseCasePort interface {
	Execute(ctx context.Context, mail, password string) (*domain.User, error)
}
