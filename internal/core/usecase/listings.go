package usecase

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetListingsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewGetListingsUseCase(repo port.ListingRepositoryPort) *GetListingsUseCase {
	return &GetListingsUseCase{repo: repo}
}

func (uc *GetListingsUseCase) Execute(ctx context.Context) ([]domain.ListingView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetListings"})

	ucLogger.Info("Use case started", nil)
	listings, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list listings", err, nil)
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(listings)})
	return listings, nil
}

type GetListingByIDUseCase struct {
	repo port.ListingRepositoryPort
}

func NewGetListingByIDUseCase(repo port.ListingRepositoryPort) *GetListingByIDUseCase {
	return &GetListingByIDUseCase{repo: repo}
}

func (uc *GetListingByIDUseCase) Execute(ctx context.Context, id int64) (*domain.ListingView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingByID",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)
	listing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get listing", err, nil)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		ucLogger.Warn("Listing not found", nil)
		return nil, domain.ErrListingNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return listing, nil
}

type CreateListingUseCase struct {
	repo      port.ListingRepositoryPort
	publisher port.EventPublisherPort
}

func NewCreateListingUseCase(repo port.ListingRepositoryPort, publisher port.EventPublisherPort) *CreateListingUseCase {
	return &CreateListingUseCase{repo: repo, publisher: publisher}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, in domain.ListingInput) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "CreateListing",
		"realtor_id": in.RealtorID,
	})

	ucLogger.Info("Use case started", nil)
	id, err := uc.repo.Create(ctx, in)
	if err != nil {
		ucLogger.Error("Failed to create listing", err, nil)
		return 0, err
	}

	price, statusID := in.Price, in.StatusID
	publishListingChanged(ctx, uc.publisher, ucLogger, domain.ListingChangedEvent{
		Type: domain.ListingCreated, ListingID: id, Price: &price, StatusID: &statusID,
	})

	ucLogger.Info("Use case finished successfully", port.Fields{"listing_id": id})
	return id, nil
}

type UpdateListingUseCase struct {
	repo      port.ListingRepositoryPort
	publisher port.EventPublisherPort
}

func NewUpdateListingUseCase(repo port.ListingRepositoryPort, publisher port.EventPublisherPort) *UpdateListingUseCase {
	return &UpdateListingUseCase{repo: repo, publisher: publisher}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, id int64, in domain.ListingInput) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)
	updated, err := uc.repo.Update(ctx, id, in)
	if err != nil {
		ucLogger.Error("Failed to update listing", err, nil)
		return err
	}
	if updated == nil {
		ucLogger.Warn("Listing not found", nil)
		return domain.ErrListingNotFound
	}

	price, statusID := in.Price, in.StatusID
	publishListingChanged(ctx, uc.publisher, ucLogger, domain.ListingChangedEvent{
		Type: domain.ListingUpdated, ListingID: id, Price: &price, StatusID: &statusID,
	})

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type UpdateListingPriceUseCase struct {
	repo      port.ListingRepositoryPort
	publisher port.EventPublisherPort
}

func NewUpdateListingPriceUseCase(repo port.ListingRepositoryPort, publisher port.EventPublisherPort) *UpdateListingPriceUseCase {
	return &UpdateListingPriceUseCase{repo: repo, publisher: publisher}
}

func (uc *UpdateListingPriceUseCase) Execute(ctx context.Context, id int64, price float64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListingPrice",
		"listing_id": id,
		"price":      price,
	})

	ucLogger.Info("Use case started", nil)
	if price < 0 {
		return fmt.Errorf("price cannot be negative: %w", domain.ErrInvalidInput)
	}

	updated, err := uc.repo.UpdatePrice(ctx, id, price)
	if err != nil {
		ucLogger.Error("Failed to update listing price", err, nil)
		return err
	}
	if updated == nil {
		ucLogger.Warn("Listing not found", nil)
		return domain.ErrListingNotFound
	}

	publishListingChanged(ctx, uc.publisher, ucLogger, domain.ListingChangedEvent{
		Type: domain.ListingPriceChanged, ListingID: id, Price: &price,
	})

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type UpdateListingStatusUseCase struct {
	repo      port.ListingRepositoryPort
	publisher port.EventPublisherPort
}

func NewUpdateListingStatusUseCase(repo port.ListingRepositoryPort, publisher port.EventPublisherPort) *UpdateListingStatusUseCase {
	return &UpdateListingStatusUseCase{repo: repo, publisher: publisher}
}

// Execute меняет статус. Несуществующий status_id отклоняется внешним ключом (ErrInvalidReference).
func (uc *UpdateListingStatusUseCase) Execute(ctx context.Context, id int64, statusID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListingStatus",
		"listing_id": id,
		"status_id":  statusID,
	})

	ucLogger.Info("Use case started", nil)
	updated, err := uc.repo.UpdateStatus(ctx, id, statusID)
	if err != nil {
		ucLogger.Error("Failed to update listing status", err, nil)
		return err
	}
	if updated == nil {
		ucLogger.Warn("Listing not found", nil)
		return domain.ErrListingNotFound
	}

	publishListingChanged(ctx, uc.publisher, ucLogger, domain.ListingChangedEvent{
		Type: domain.ListingStatusChanged, ListingID: id, StatusID: &statusID,
	})

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type DeleteListingUseCase struct {
	repo      port.ListingRepositoryPort
	publisher port.EventPublisherPort
}

func NewDeleteListingUseCase(repo port.ListingRepositoryPort, publisher port.EventPublisherPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{repo: repo, publisher: publisher}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to delete listing", err, nil)
		return err
	}
	if deleted == nil {
		ucLogger.Warn("Listing not found", nil)
		return domain.ErrListingNotFound
	}

	publishListingChanged(ctx, uc.publisher, ucLogger, domain.ListingChangedEvent{
		Type: domain.ListingDeleted, ListingID: id,
	})

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
