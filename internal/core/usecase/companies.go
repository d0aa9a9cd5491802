package usecase

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetCompaniesUseCase struct {
	repo port.CompanyRepositoryPort
}

func NewGetCompaniesUseCase(repo port.CompanyRepositoryPort) *GetCompaniesUseCase {
	return &GetCompaniesUseCase{repo: repo}
}

func (uc *GetCompaniesUseCase) Execute(ctx context.Context) ([]domain.RealtorCompany, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetCompanies"})

	companies, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list companies", err, nil)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

type GetCompanyByIDUseCase struct {
	repo port.CompanyRepositoryPort
}

func NewGetCompanyByIDUseCase(repo port.CompanyRepositoryPort) *GetCompanyByIDUseCase {
	return &GetCompanyByIDUseCase{repo: repo}
}

func (uc *GetCompanyByIDUseCase) Execute(ctx context.Context, id int64) (*domain.RealtorCompany, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetCompanyByID",
		"company_id": id,
	})

	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get company", err, nil)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

type CreateCompanyUseCase struct {
	repo port.CompanyRepositoryPort
}

func NewCreateCompanyUseCase(repo port.CompanyRepositoryPort) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{repo: repo}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, in domain.CompanyInput) (int64, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateCompany",
		"name":     in.Name,
	})

	ucLogger.Info("Use case started", nil)
	id, err := uc.repo.Create(ctx, in)
	if err != nil {
		ucLogger.Error("Failed to create company", err, nil)
		return 0, err
	}
	ucLogger.Info("Use case finished successfully", port.Fields{"company_id": id})
	return id, nil
}

type UpdateCompanyUseCase struct {
	repo port.CompanyRepositoryPort
}

func NewUpdateCompanyUseCase(repo port.CompanyRepositoryPort) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{repo: repo}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, id int64, in domain.CompanyInput) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateCompany",
		"company_id": id,
	})

	updated, err := uc.repo.Update(ctx, id, in)
	if err != nil {
		ucLogger.Error("Failed to update company", err, nil)
		return err
	}
	if updated == nil {
		return domain.ErrCompanyNotFound
	}
	ucLogger.Info("Company updated", nil)
	return nil
}

type DeleteCompanyUseCase struct {
	repo port.CompanyRepositoryPort
}

func NewDeleteCompanyUseCase(repo port.CompanyRepositoryPort) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{repo: repo}
}

// Execute удаляет компанию. У сотрудников company_id становится NULL.
func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteCompany",
		"company_id": id,
	})

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to delete company", err, nil)
		return err
	}
	if deleted == nil {
		return domain.ErrCompanyNotFound
	}
	ucLogger.Info("Company deleted", nil)
	return nil
}
