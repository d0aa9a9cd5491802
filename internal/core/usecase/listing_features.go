package usecase

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// ensureListingExists отличает "у объявления нет особенностей" от "объявления нет".
func ensureListingExists(ctx context.Context, listings port.ListingRepositoryPort, id int64) error {
	listing, err := listings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check listing: %w", err)
	}
	if listing == nil {
		return domain.ErrListingNotFound
	}
	return nil
}

type GetListingFeaturesUseCase struct {
	listings port.ListingRepositoryPort
	features port.FeatureRepositoryPort
}

func NewGetListingFeaturesUseCase(listings port.ListingRepositoryPort, features port.FeatureRepositoryPort) *GetListingFeaturesUseCase {
	return &GetListingFeaturesUseCase{listings: listings, features: features}
}

func (uc *GetListingFeaturesUseCase) Execute(ctx context.Context, listingID int64) ([]domain.Feature, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingFeatures",
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)
	if err := ensureListingExists(ctx, uc.listings, listingID); err != nil {
		ucLogger.Warn("Listing check failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	features, err := uc.features.ListForListing(ctx, listingID)
	if err != nil {
		ucLogger.Error("Failed to list listing features", err, nil)
		return nil, fmt.Errorf("failed to list listing features: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(features)})
	return features, nil
}

type AddListingFeatureUseCase struct {
	features port.FeatureRepositoryPort
}

func NewAddListingFeatureUseCase(features port.FeatureRepositoryPort) *AddListingFeatureUseCase {
	return &AddListingFeatureUseCase{features: features}
}

// Execute идемпотентен. Несуществующие объявление или особенность дают ErrInvalidReference.
func (uc *AddListingFeatureUseCase) Execute(ctx context.Context, listingID, featureID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "AddListingFeature",
		"listing_id": listingID,
		"feature_id": featureID,
	})

	ucLogger.Info("Use case started", nil)
	if err := uc.features.AddToListing(ctx, listingID, featureID); err != nil {
		ucLogger.Error("Failed to link feature", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type RemoveListingFeatureUseCase struct {
	features port.FeatureRepositoryPort
}

func NewRemoveListingFeatureUseCase(features port.FeatureRepositoryPort) *RemoveListingFeatureUseCase {
	return &RemoveListingFeatureUseCase{features: features}
}

func (uc *RemoveListingFeatureUseCase) Execute(ctx context.Context, listingID, featureID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "RemoveListingFeature",
		"listing_id": listingID,
		"feature_id": featureID,
	})

	ucLogger.Info("Use case started", nil)
	removed, err := uc.features.RemoveFromListing(ctx, listingID, featureID)
	if err != nil {
		ucLogger.Error("Failed to unlink feature", err, nil)
		return err
	}
	if removed == nil {
		ucLogger.Warn("Feature is not linked to listing", nil)
		return domain.ErrFeatureNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
