package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetRolesUseCase struct {
	repo port.DictionaryRepositoryPort
}

func NewGetRolesUseCase(repo port.DictionaryRepositoryPort) *GetRolesUseCase {
	return &GetRolesUseCase{repo: repo}
}

func (uc *GetRolesUseCase) Execute(ctx context.Context) ([]domain.Role, error) {
	roles, err := uc.repo.ListRoles(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list roles", err, port.Fields{"use_case": "GetRoles"})
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

type GetStatusesUseCase struct {
	repo port.DictionaryRepositoryPort
}

func NewGetStatusesUseCase(repo port.DictionaryRepositoryPort) *GetStatusesUseCase {
	return &GetStatusesUseCase{repo: repo}
}

func (uc *GetStatusesUseCase) Execute(ctx context.Context) ([]domain.Status, error) {
	statuses, err := uc.repo.ListStatuses(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list statuses", err, port.Fields{"use_case": "GetStatuses"})
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// CreateStatusUseCase добавляет статус объявления без изменения схемы.
type CreateStatusUseCase struct {
	repo port.DictionaryRepositoryPort
}

func NewCreateStatusUseCase(repo port.DictionaryRepositoryPort) *CreateStatusUseCase {
	return &CreateStatusUseCase{repo: repo}
}

func (uc *CreateStatusUseCase) Execute(ctx context.Context, name string) (int64, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateStatus",
		"name":     name,
	})

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("status name is required: %w", domain.ErrInvalidInput)
	}

	id, err := uc.repo.CreateStatus(ctx, name)
	if err != nil {
		ucLogger.Error("Failed to create status", err, nil)
		return 0, err
	}
	ucLogger.Info("Status created", port.Fields{"status_id": id})
	return id, nil
}

type GetPropertyTypesUseCase struct {
	repo port.DictionaryRepositoryPort
}

func NewGetPropertyTypesUseCase(repo port.DictionaryRepositoryPort) *GetPropertyTypesUseCase {
	return &GetPropertyTypesUseCase{repo: repo}
}

func (uc *GetPropertyTypesUseCase) Execute(ctx context.Context) ([]domain.PropertyType, error) {
	types, err := uc.repo.ListPropertyTypes(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list property types", err, port.Fields{"use_case": "GetPropertyTypes"})
		return nil, fmt.Errorf("failed to list property types: %w", err)
	}
	return types, nil
}

type CreatePropertyTypeUseCase struct {
	repo port.DictionaryRepositoryPort
}

func NewCreatePropertyTypeUseCase(repo port.DictionaryRepositoryPort) *CreatePropertyTypeUseCase {
	return &CreatePropertyTypeUseCase{repo: repo}
}

func (uc *CreatePropertyTypeUseCase) Execute(ctx context.Context, name string) (int64, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreatePropertyType",
		"name":     name,
	})

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("property type name is required: %w", domain.ErrInvalidInput)
	}

	id, err := uc.repo.CreatePropertyType(ctx, name)
	if err != nil {
		ucLogger.Error("Failed to create property type", err, nil)
		return 0, err
	}
	ucLogger.Info("Property type created", port.Fields{"property_type_id": id})
	return id, nil
}
