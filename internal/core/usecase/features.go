package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetFeaturesUseCase struct {
	repo port.FeatureRepositoryPort
}

func NewGetFeaturesUseCase(repo port.FeatureRepositoryPort) *GetFeaturesUseCase {
	return &GetFeaturesUseCase{repo: repo}
}

func (uc *GetFeaturesUseCase) Execute(ctx context.Context) ([]domain.Feature, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetFeatures"})

	features, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list features", err, nil)
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

type GetFeatureByIDUseCase struct {
	repo port.FeatureRepositoryPort
}

func NewGetFeatureByIDUseCase(repo port.FeatureRepositoryPort) *GetFeatureByIDUseCase {
	return &GetFeatureByIDUseCase{repo: repo}
}

func (uc *GetFeatureByIDUseCase) Execute(ctx context.Context, id int64) (*domain.Feature, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetFeatureByID",
		"feature_id": id,
	})

	feature, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get feature", err, nil)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	if feature == nil {
		return nil, domain.ErrFeatureNotFound
	}
	return feature, nil
}

type CreateFeatureUseCase struct {
	repo port.FeatureRepositoryPort
}

func NewCreateFeatureUseCase(repo port.FeatureRepositoryPort) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{repo: repo}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, name string) (int64, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateFeature",
		"name":     name,
	})

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("feature name is required: %w", domain.ErrInvalidInput)
	}

	ucLogger.Info("Use case started", nil)
	id, err := uc.repo.Create(ctx, name)
	if err != nil {
		ucLogger.Error("Failed to create feature", err, nil)
		return 0, err
	}
	ucLogger.Info("Use case finished successfully", port.Fields{"feature_id": id})
	return id, nil
}

type UpdateFeatureUseCase struct {
	repo port.FeatureRepositoryPort
}

func NewUpdateFeatureUseCase(repo port.FeatureRepositoryPort) *UpdateFeatureUseCase {
	return &UpdateFeatureUseCase{repo: repo}
}

func (uc *UpdateFeatureUseCase) Execute(ctx context.Context, id int64, name string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateFeature",
		"feature_id": id,
	})

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("feature name is required: %w", domain.ErrInvalidInput)
	}

	updated, err := uc.repo.Update(ctx, id, name)
	if err != nil {
		ucLogger.Error("Failed to update feature", err, nil)
		return err
	}
	if updated == nil {
		return domain.ErrFeatureNotFound
	}
	ucLogger.Info("Feature updated", nil)
	return nil
}

type DeleteFeatureUseCase struct {
	repo port.FeatureRepositoryPort
}

func NewDeleteFeatureUseCase(repo port.FeatureRepositoryPort) *DeleteFeatureUseCase {
	return &DeleteFeatureUseCase{repo: repo}
}

func (uc *DeleteFeatureUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteFeature",
		"feature_id": id,
	})

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to delete feature", err, nil)
		return err
	}
	if deleted == nil {
		return domain.ErrFeatureNotFound
	}
	ucLogger.Info("Feature deleted", nil)
	return nil
}
