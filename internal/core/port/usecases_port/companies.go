package usecases_port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

type GetCompaniesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.RealtorCompany, error)
}

type GetCompanyByIDUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.RealtorCompany, error)
}

type CreateCompanyUseCasePort interface {
	Execute(ctx context.Context, in domain.CompanyInput) (int64, error)
}

type UpdateCompanyUseCasePort interface {
	Execute(ctx context.Context, id int64, in domain.CompanyInput) error
}

type DeleteCompanyUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
